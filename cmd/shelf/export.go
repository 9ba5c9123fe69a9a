package shelf

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/lepinkainen/ytshelf/internal/catalog"
	"github.com/lepinkainen/ytshelf/internal/cmdutil"
	"github.com/lepinkainen/ytshelf/internal/config"
	"github.com/lepinkainen/ytshelf/internal/fileutil"
	"github.com/lepinkainen/ytshelf/internal/note"
)

// ExportOptions holds the export command flags.
type ExportOptions struct {
	OutputDir  string
	JSONOutput string
	WriteJSON  bool
}

// Export writes one markdown note per catalog movie and optionally a JSON
// dump of the whole catalog. Existing notes are skipped unless overwriting
// is enabled.
func Export(opts ExportOptions) error {
	store := catalog.NewStore(config.DataDir)
	cat, err := store.Load()
	if err != nil {
		return err
	}

	if cat.Len() == 0 {
		fmt.Println("No movies in the catalog. Run 'fetch' first.")
		return nil
	}

	cfg := &cmdutil.BaseCommandConfig{
		OutputDir:  opts.OutputDir,
		ConfigKey:  "export",
		JSONOutput: opts.JSONOutput,
		WriteJSON:  opts.WriteJSON,
		Overwrite:  config.OverwriteFiles,
	}
	if err := cmdutil.SetupOutputDir(cfg); err != nil {
		return err
	}

	written, skipped := 0, 0
	for _, m := range cat.Movies() {
		content, err := buildMovieNote(m)
		if err != nil {
			return fmt.Errorf("building note for %q: %w", m.Title, err)
		}

		path := fileutil.GetMarkdownFilePath(fmt.Sprintf("%s (%d)", m.Title, m.Year), cfg.OutputDir)
		ok, err := fileutil.WriteFileWithOverwrite(path, content, 0644, cfg.Overwrite)
		if err != nil {
			return fmt.Errorf("writing note for %q: %w", m.Title, err)
		}
		if ok {
			written++
		} else {
			skipped++
		}
	}

	slog.Info("Exported markdown notes", "written", written, "skipped", skipped, "directory", cfg.OutputDir)
	fmt.Printf("Exported %d notes to %s (%d already existed)\n", written, cfg.OutputDir, skipped)

	if cfg.WriteJSON {
		if _, err := fileutil.WriteJSONFile(cat.Movies(), cfg.JSONOutput, cfg.Overwrite); err != nil {
			return err
		}
		fmt.Printf("Wrote JSON dump to %s\n", cfg.JSONOutput)
	}

	return nil
}

func buildMovieNote(m catalog.Movie) ([]byte, error) {
	tags := note.NewTagSet()
	tags.Add("yts")
	if m.Year > 0 {
		tags.AddFormat("%ds", m.Year/10*10)
	}
	for _, quality := range m.Qualities() {
		tags.Add(quality)
	}

	fm := note.NewFrontmatter()
	fm.Set("title", m.Title)
	fm.Set("year", m.Year)
	fm.Set("imdb_id", m.ImdbCode)
	fm.Set("tags", tags.GetSorted())

	var body strings.Builder
	body.WriteString(fmt.Sprintf("# %s (%d)\n\n", m.Title, m.Year))
	if m.ImdbCode != "" {
		body.WriteString(fmt.Sprintf("[IMDb](https://www.imdb.com/title/%s/)\n\n", m.ImdbCode))
	}

	if len(m.Torrents) > 0 {
		body.WriteString("| Quality | Size | Magnet |\n")
		body.WriteString("| --- | --- | --- |\n")
		for _, t := range m.Torrents {
			body.WriteString(fmt.Sprintf("| %s | %s | [magnet](%s) |\n",
				t.Quality, catalog.FormatSize(t.SizeBytes), t.MagnetURL))
		}
	}

	n := &note.Note{Frontmatter: fm, Body: body.String()}
	return n.Build()
}
