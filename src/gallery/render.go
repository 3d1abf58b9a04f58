package gallery

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/components"
)

// WritePage composes the given charts into one flex-layout page and writes
// the rendered HTML to path. Exactly one artifact is produced per call.
func WritePage(path, title string, charts ...components.Charter) error {
	if len(charts) == 0 {
		return fmt.Errorf("write page %s: no charts", path)
	}
	page := components.NewPage()
	page.PageTitle = title
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(charts...)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	if st, err := f.Stat(); err == nil {
		Infof("wrote %s (%d charts, %d bytes)", path, len(charts), st.Size())
	}
	return nil
}

// WriteHTML writes already rendered HTML to path. Used by the dashboard
// report shell, which produces its own document.
func WriteHTML(path string, html []byte) error {
	if len(html) == 0 {
		return fmt.Errorf("write %s: empty document", path)
	}
	if err := os.WriteFile(path, html, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	Infof("wrote %s (%d bytes)", path, len(html))
	return nil
}
