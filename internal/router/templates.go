package router

import (
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"sentiview/internal/utils"

	"github.com/gin-contrib/multitemplate"
)

// FuncMap 模板函数，日期按 loc 展示
func FuncMap(loc *time.Location) template.FuncMap {
	return template.FuncMap{
		"dict": func(values ...interface{}) (map[string]interface{}, error) {
			if len(values)%2 != 0 {
				return nil, fmt.Errorf("invalid dict call")
			}
			dict := make(map[string]interface{}, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict keys must be strings")
				}
				dict[key] = values[i+1]
			}
			return dict, nil
		},
		"num": utils.FormatNumber,
		"formatDate": func(t time.Time) string {
			return utils.FormatSpanishDateTime(t, loc)
		},
		"ms": func(d time.Duration) int64 {
			return d.Milliseconds()
		},
		"commentHTML": utils.RenderCommentText,
	}
}

// LoadTemplates 整页 = layouts + components + view；局部片段 = view + components
func LoadTemplates(templatesDir string, loc *time.Location) (multitemplate.Renderer, error) {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		return nil, err
	}
	components, err := filepath.Glob(templatesDir + "/components/*.html")
	if err != nil {
		return nil, err
	}
	if len(layouts) == 0 || len(components) == 0 {
		return nil, fmt.Errorf("no templates found under %s", templatesDir)
	}

	page := func(view string) []string {
		files := make([]string, 0, len(layouts)+len(components)+1)
		files = append(files, layouts...)
		files = append(files, components...)
		return append(files, view)
	}
	partial := func(view string) []string {
		return append([]string{view}, components...)
	}

	funcMap := FuncMap(loc)

	r.AddFromFilesFuncs("dashboard/index.html", funcMap, page(templatesDir+"/views/dashboard/index.html")...)

	for _, name := range []string{"users", "comments", "alert", "user_form", "comment_form", "quick_result"} {
		key := "partials/" + name + ".html"
		r.AddFromFilesFuncs(key, funcMap, partial(templatesDir+"/views/"+key)...)
	}

	return r, nil
}
