package publisher

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/kapu/mediatrends-publishers-go/internal/constants"
	"github.com/kapu/mediatrends-publishers-go/internal/util"
	"github.com/kapu/mediatrends-publishers-go/pkg/errors"
)

//go:embed templates/*.html
var builtinTemplateFS embed.FS

// TemplateEngine loads "<name>.html" templates from a directory, or from the
// built-in set when no directory is configured. Parsed templates are cached.
type TemplateEngine struct {
	dir     string
	funcMap template.FuncMap

	mu    sync.Mutex
	cache map[string]*template.Template
}

func NewTemplateEngine(dir string) *TemplateEngine {
	return &TemplateEngine{
		dir:     dir,
		funcMap: templateFuncs(),
		cache:   make(map[string]*template.Template),
	}
}

// Load returns the parsed template. A missing file is a ResourceNotFoundError.
func (te *TemplateEngine) Load(name string) (*template.Template, error) {
	te.mu.Lock()
	defer te.mu.Unlock()

	if tmpl, ok := te.cache[name]; ok {
		return tmpl, nil
	}

	file := name + ".html"
	var (
		content []byte
		err     error
	)
	if te.dir != "" {
		path := filepath.Join(te.dir, file)
		content, err = os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.NewResourceNotFoundError("template", file, []string{path})
			}
			return nil, fmt.Errorf("failed to read template %s: %w", path, err)
		}
	} else {
		content, err = fs.ReadFile(builtinTemplateFS, "templates/"+file)
		if err != nil {
			return nil, errors.NewResourceNotFoundError("template", file, []string{"builtin:" + file})
		}
	}

	tmpl, err := template.New(file).Funcs(te.funcMap).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", file, err)
	}
	te.cache[name] = tmpl
	return tmpl, nil
}

// Render executes the named template with vars.
func (te *TemplateEngine) Render(name string, vars any) ([]byte, error) {
	tmpl, err := te.Load(name)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatRating": func(v *float64) string {
			if v == nil {
				return "-"
			}
			return fmt.Sprintf("%.1f", *v)
		},
		"formatScore": func(v *float64) string {
			if v == nil {
				return ""
			}
			return fmt.Sprintf("%.2f", *v)
		},
		"formatYear": func(v *int) string {
			if v == nil {
				return ""
			}
			return fmt.Sprintf("%d", *v)
		},
		"formatDate": func(t *time.Time) string {
			if t == nil || t.IsZero() {
				return ""
			}
			return t.Format(constants.Website.DateLayout)
		},
		"formatTime": func(t time.Time) string {
			return t.Format(time.RFC3339)
		},
		"truncate": util.TruncateString,
		"join":     strings.Join,
		"lower":    strings.ToLower,
	}
}
