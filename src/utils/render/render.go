package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"
	"time"

	"fingenius/src/utils"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/*.html templates/styles.css
var templateFS embed.FS

const (
	PageHome      = "home"
	PageAbout     = "about"
	PageDashboard = "dashboard"
)

// ErrPDFUnavailable is returned when no wkhtmltopdf binary can be found.
var ErrPDFUnavailable = errors.New("pdf generation is unavailable")

type NavLink struct {
	Href   string
	Label  string
	Active bool
}

// Page is the data every page template receives.
type Page struct {
	Title       string
	Description string
	CSS         template.CSS
	Year        int
	Nav         []NavLink
	Content     any
}

// Slice is one segment of a pie chart.
type Slice struct {
	Name  string
	Value float64
}

type Renderer struct {
	pages       map[string]*template.Template
	css         template.CSS
	markdown    goldmark.Markdown
	wkhtmltopdf string
}

type Option func(*Renderer)

// WithWkhtmltopdfPath points PDF generation at a specific binary.
func WithWkhtmltopdfPath(path string) Option {
	return func(r *Renderer) { r.wkhtmltopdf = path }
}

func NewRenderer(options ...Option) (*Renderer, error) {
	css, err := templateFS.ReadFile("templates/styles.css")
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		pages:    make(map[string]*template.Template),
		css:      template.CSS(css),
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
	for _, opt := range options {
		opt(r)
	}

	for _, page := range []string{PageHome, PageAbout, PageDashboard} {
		tpl, err := template.New(page).Funcs(funcMap()).ParseFS(templateFS,
			"templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", page, err)
		}
		r.pages[page] = tpl
	}
	return r, nil
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"currency":    utils.FormatCurrency,
		"percent":     utils.FormatPercentage,
		"number":      utils.FormatNumber,
		"changeClass": func(v float64) string { return string(utils.ChangeColorClass(v)) },
		"sign":        utils.SignPrefix,
		"truncate":    utils.TruncateText,
		"capitalize":  utils.Capitalize,
		"classes":     utils.JoinClasses,
		"confidence":  utils.FormatConfidence,
		"activeClass": func(active bool) string {
			if active {
				return "active"
			}
			return ""
		},
	}
}

// NewPage fills in the chrome shared by every page.
func (r *Renderer) NewPage(active, title, description string, content any) Page {
	nav := []NavLink{
		{Href: "/", Label: "Home"},
		{Href: "/dashboard", Label: "Dashboard"},
		{Href: "/about", Label: "About"},
	}
	for i := range nav {
		nav[i].Active = nav[i].Label == active
	}
	return Page{
		Title:       title,
		Description: description,
		CSS:         r.css,
		Year:        time.Now().Year(),
		Nav:         nav,
		Content:     content,
	}
}

// RenderPage executes the named page inside the shared layout.
func (r *Renderer) RenderPage(w io.Writer, name string, page Page) error {
	tpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return tpl.ExecuteTemplate(w, "layout", page)
}

func (r *Renderer) RenderHTML(name string, page Page) (string, error) {
	var output bytes.Buffer
	if err := r.RenderPage(&output, name, page); err != nil {
		return "", err
	}
	return output.String(), nil
}

// MarkdownToHTML converts markdown to HTML. Raw HTML in the source is
// dropped.
func (r *Renderer) MarkdownToHTML(source string) (template.HTML, error) {
	var output bytes.Buffer
	if err := r.markdown.Convert([]byte(source), &output); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return template.HTML(output.String()), nil //nolint:gosec
}

// RenderPieGraph writes a standalone HTML page holding a pie chart, one
// palette color per slice in order.
func RenderPieGraph(w io.Writer, title string, slices []Slice) error {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title}),
		charts.WithTitleOpts(opts.Title{Title: title}),
	)

	items := make([]opts.PieData, 0, len(slices))
	for i, s := range slices {
		items = append(items, opts.PieData{
			Name:      s.Name,
			Value:     s.Value,
			ItemStyle: &opts.ItemStyle{Color: utils.GetChartColor(i)},
		})
	}
	pie.AddSeries("Allocation", items)

	return pie.Render(w)
}

// GeneratePDF generates a PDF from an array of HTML strings
func (r *Renderer) GeneratePDF(htmlContents []string) (*bytes.Buffer, error) {
	if r.wkhtmltopdf != "" {
		if _, err := os.Stat(r.wkhtmltopdf); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPDFUnavailable, err)
		}
		wkhtmltopdf.SetPath(r.wkhtmltopdf)
	}
	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFUnavailable, err)
	}

	for _, html := range htmlContents {
		page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(html)))
		pdfg.AddPage(page)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA4)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return bytes.NewBuffer(pdfg.Bytes()), nil
}
