package handlers

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/rogerio-castellano/smart-retail-ops/internal/inventory"
	"github.com/rogerio-castellano/smart-retail-ops/internal/logging"
	"github.com/rogerio-castellano/smart-retail-ops/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"dashboard", "threshold", "inventory_management", "threshold_list"}

type pageSet map[string]*template.Template

var printer = message.NewPrinter(language.English)

var pageFuncs = template.FuncMap{
	"money": func(d decimal.Decimal) string {
		return "$" + printer.Sprintf("%.2f", d.Round(2).InexactFloat64())
	},
	"total": func(it models.Item) decimal.Decimal { return it.TotalValue() },
	"classCount": func(counts map[models.ABCClass]int, class string) int {
		return counts[models.ABCClass(class)]
	},
}

func mustParsePages() pageSet {
	set := pageSet{}
	for _, name := range pageNames {
		set[name] = template.Must(template.New("layout.html").Funcs(pageFuncs).
			ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html"))
	}
	return set
}

type pageData struct {
	Title   string
	Message string
	Error   string
	Errors  inventory.ValidationErrors
	Form    map[string]string
	Items   []models.Item
	Summary inventory.Summary
	Views   []inventory.ThresholdView
	// ItemNames feeds the item picker on the threshold form.
	ItemNames []string
}

// render buffers the page so a template failure never leaves a half-written
// response.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data pageData) {
	var buf bytes.Buffer
	if err := h.pages[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		logging.FromContext(r.Context()).Error("render page", "page", page, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// renderError shows err on page. Validation errors keep the submitted form.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, page string, data pageData, err error) {
	status, code, message := errorKind(err)
	var verr inventory.ValidationErrors
	if errors.As(err, &verr) {
		data.Errors = verr
	} else {
		logging.FromContext(r.Context()).Error("page request failed", "page", page, "error", err, "kind", code)
		data.Error = message
	}
	h.render(w, r, status, page, data)
}

func (h *Handler) IndexPage(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (h *Handler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	data := pageData{Title: "Dashboard"}
	sum, err := h.svc.Summary(r.Context())
	if err != nil {
		h.renderError(w, r, "dashboard", data, err)
		return
	}
	items, err := h.svc.ListItems(r.Context())
	if err != nil {
		h.renderError(w, r, "dashboard", data, err)
		return
	}
	data.Summary = sum
	data.Items = items
	h.render(w, r, http.StatusOK, "dashboard", data)
}

func (h *Handler) ThresholdPage(w http.ResponseWriter, r *http.Request) {
	data := pageData{Title: "Set Threshold", Form: map[string]string{}}
	items, err := h.svc.ListItems(r.Context())
	if err != nil {
		h.renderError(w, r, "threshold", data, err)
		return
	}
	data.ItemNames = itemNames(items)

	if r.Method != http.MethodPost {
		h.render(w, r, http.StatusOK, "threshold", data)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	for _, k := range []string{"item_name", "min_threshold", "max_threshold"} {
		data.Form[k] = r.PostForm.Get(k)
	}

	in, err := inventory.ParseThreshold(data.Form["item_name"], data.Form["min_threshold"], data.Form["max_threshold"])
	if err == nil {
		_, err = h.svc.SetThreshold(r.Context(), in)
	}
	if err != nil {
		h.renderError(w, r, "threshold", data, err)
		return
	}

	data.Message = thresholdMessage(in.ItemName, in.Min, in.Max)
	data.Form = map[string]string{}
	h.render(w, r, http.StatusOK, "threshold", data)
}

// itemNames returns each inventory name once, in insertion order.
func itemNames(items []models.Item) []string {
	seen := map[string]bool{}
	names := []string{}
	for _, it := range items {
		if !seen[it.Name] {
			seen[it.Name] = true
			names = append(names, it.Name)
		}
	}
	return names
}

func (h *Handler) InventoryManagementPage(w http.ResponseWriter, r *http.Request) {
	data := pageData{Title: "Inventory Management", Form: map[string]string{}}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		for _, k := range []string{"name", "quantity", "unit_cost"} {
			data.Form[k] = r.PostForm.Get(k)
		}

		in, err := inventory.ParseAddItem(data.Form["name"], data.Form["quantity"], data.Form["unit_cost"])
		var created models.Item
		if err == nil {
			created, err = h.svc.AddItem(r.Context(), in)
		}
		if err != nil {
			data.Items, _ = h.svc.ListItems(r.Context())
			h.renderError(w, r, "inventory_management", data, err)
			return
		}
		data.Message = "Added '" + created.Name + "' as class " + string(created.ABCClass)
		data.Form = map[string]string{}
	}

	items, err := h.svc.ListItems(r.Context())
	if err != nil {
		h.renderError(w, r, "inventory_management", data, err)
		return
	}
	data.Items = items
	h.render(w, r, http.StatusOK, "inventory_management", data)
}

func (h *Handler) ThresholdListPage(w http.ResponseWriter, r *http.Request) {
	data := pageData{Title: "Thresholds"}
	views, err := h.svc.ThresholdStatus(r.Context())
	if err != nil {
		h.renderError(w, r, "threshold_list", data, err)
		return
	}
	data.Views = views
	h.render(w, r, http.StatusOK, "threshold_list", data)
}
