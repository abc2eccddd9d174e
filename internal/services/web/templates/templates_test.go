package templates

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/homeoinvent/homeoinvent/internal/platform/branding"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestFooterRendersFixedText(t *testing.T) {
	t.Parallel()

	first := render(t, context.Background(), Footer())
	withChildren := templ.WithChildren(context.Background(), templ.Raw("<p>ignored</p>"))
	second := render(t, withChildren, Footer())
	if first != second {
		t.Fatalf("footer output differs across contexts: %q vs %q", first, second)
	}
	if !strings.Contains(first, templ.EscapeString(FooterText)) {
		t.Fatalf("footer = %q, want text %q", first, FooterText)
	}
	if !strings.HasPrefix(FooterText, branding.AppName) {
		t.Fatalf("FooterText = %q, want product name prefix", FooterText)
	}
}

func TestTabItemsActiveOnlyOnExactMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path          string
		wantInventory bool
		wantAnalytics bool
	}{
		{path: "/", wantInventory: true},
		{path: "/analytics", wantAnalytics: true},
		{path: "/analytics/", wantAnalytics: false},
		{path: "", wantInventory: false},
		{path: "/family", wantInventory: false},
		{path: "/medicines/med-1", wantInventory: false},
		{path: "/ANALYTICS", wantAnalytics: false},
		{path: "//", wantInventory: false},
	}
	for _, tc := range tests {
		items := TabItems(tc.path)
		if len(items) != 2 {
			t.Fatalf("TabItems(%q) = %d items, want 2", tc.path, len(items))
		}
		if items[0].LabelKey != "nav.inventory" || items[0].Href != "/" {
			t.Fatalf("first tab = %+v", items[0])
		}
		if items[1].LabelKey != "nav.analytics" || items[1].Href != "/analytics" {
			t.Fatalf("second tab = %+v", items[1])
		}
		if items[0].Active != tc.wantInventory {
			t.Fatalf("TabItems(%q) inventory active = %v, want %v", tc.path, items[0].Active, tc.wantInventory)
		}
		if items[1].Active != tc.wantAnalytics {
			t.Fatalf("TabItems(%q) analytics active = %v, want %v", tc.path, items[1].Active, tc.wantAnalytics)
		}
	}
}

func TestTabNavMarksActiveLink(t *testing.T) {
	t.Parallel()

	got := render(t, context.Background(), TabNav("/analytics", nil))
	if !strings.Contains(got, `<a class="tab tab-active" aria-current="page" href="/analytics">nav.analytics</a>`) {
		t.Fatalf("expected active analytics tab, got %q", got)
	}
	if !strings.Contains(got, `<a class="tab" href="/">nav.inventory</a>`) {
		t.Fatalf("expected inactive inventory tab, got %q", got)
	}

	none := render(t, context.Background(), TabNav("/family", nil))
	if strings.Contains(none, "tab-active") {
		t.Fatalf("expected no active tab, got %q", none)
	}
}

func TestTabNavSwapMarksOutOfBand(t *testing.T) {
	t.Parallel()

	plain := render(t, context.Background(), TabNav("/", nil))
	if !strings.HasPrefix(plain, `<nav id="tab-nav" class="tab-nav" aria-label=`) {
		t.Fatalf("expected nav with stable id, got %q", plain)
	}
	swapped := render(t, context.Background(), TabNavSwap("/", nil))
	if !strings.HasPrefix(swapped, `<nav id="tab-nav" class="tab-nav" hx-swap-oob="true" aria-label=`) {
		t.Fatalf("expected out-of-band nav, got %q", swapped)
	}
}

func TestTabNavUsesLocalizer(t *testing.T) {
	t.Parallel()

	got := render(t, context.Background(), TabNav("/", stubLocalizer{"nav.inventory": "Inventário"}))
	if !strings.Contains(got, ">Inventário</a>") {
		t.Fatalf("expected localized label, got %q", got)
	}
}

func TestLayoutComposesChrome(t *testing.T) {
	t.Parallel()

	ctx := templ.WithChildren(context.Background(), templ.Raw(`<p id="child">hello</p>`))
	got := render(t, ctx, Layout(LayoutOptions{
		Title:       "Analytics",
		Lang:        "pt-BR",
		CurrentPath: "/analytics",
		Languages:   []LanguageLink{{LabelKey: "nav.lang_en", URL: "/?lang=en-US"}, {LabelKey: "nav.lang_pt_br", URL: "/?lang=pt-BR", Active: true}},
	}))

	for _, want := range []string{
		`<html lang="pt-BR">`,
		"<title>Analytics | " + branding.AppName + "</title>",
		`aria-current="page" href="/analytics"`,
		`<main id="main" class="app-main"><p id="child">hello</p></main>`,
		`<footer class="app-footer">`,
		`aria-current="true" href="/?lang=pt-BR"`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("layout missing %q in %q", want, got)
		}
	}
	if strings.Index(got, "tab-nav") > strings.Index(got, `id="main"`) {
		t.Fatal("tab navigation must precede main content")
	}
	if strings.Index(got, `id="main"`) > strings.Index(got, "app-footer") {
		t.Fatal("footer must follow main content")
	}
}

func TestComposePageTitle(t *testing.T) {
	t.Parallel()

	if got := ComposePageTitle(""); got != branding.AppName {
		t.Fatalf("ComposePageTitle(\"\") = %q", got)
	}
	if got := ComposePageTitle("Inventory | " + branding.AppName); got != "Inventory | "+branding.AppName {
		t.Fatalf("ComposePageTitle() = %q", got)
	}
}

func TestInventoryPageEscapesAndListsRows(t *testing.T) {
	t.Parallel()

	got := render(t, context.Background(), InventoryPage(InventoryView{
		Rows: []MedicineRow{{
			Label:     `Arnica <script>`,
			FormKey:   "form.pellets",
			Quantity:  "1",
			LowStock:  true,
			EditURL:   "/medicines/med-1",
			DeleteURL: "/medicines/med-1/delete",
		}},
		NextPageURL: "/?page=abc",
		Form:        MedicineFormView{Action: "/medicines", SubmitKey: "action.add"},
	}, nil))

	if strings.Contains(got, "<script>") {
		t.Fatalf("expected escaped label, got %q", got)
	}
	for _, want := range []string{
		"Arnica &lt;script&gt;",
		"inventory.badge_low_stock",
		`href="/medicines/med-1"`,
		`action="/medicines/med-1/delete"`,
		`rel="next" href="/?page=abc"`,
		`action="/medicines"`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("inventory page missing %q in %q", want, got)
		}
	}
	if strings.Contains(got, "inventory.empty") {
		t.Fatal("non-empty inventory must not render empty state")
	}
}

func TestInventoryPageEmptyState(t *testing.T) {
	t.Parallel()

	got := render(t, context.Background(), InventoryPage(InventoryView{}, nil))
	if !strings.Contains(got, "inventory.empty") {
		t.Fatalf("expected empty state, got %q", got)
	}
}

func TestMedicineFormMarksFieldErrors(t *testing.T) {
	t.Parallel()

	got := render(t, context.Background(), MedicineForm(MedicineFormView{
		Action:      "/medicines",
		SubmitKey:   "action.add",
		ErrorKey:    "error.medicine_invalid",
		Potency:     "31Z",
		Form:        "drops",
		FormOptions: []SelectOption{{Value: "pellets", LabelKey: "form.pellets"}, {Value: "drops", LabelKey: "form.drops"}},
		FieldErrors: map[string]string{"potency": "validation.potency"},
	}, nil))

	for _, want := range []string{
		`name="potency" type="text" value="31Z" required aria-invalid="true"`,
		"validation.potency",
		`<option value="drops" selected>`,
		"error.medicine_invalid",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("form missing %q in %q", want, got)
		}
	}
}

func TestAnalyticsPageFormatsCounts(t *testing.T) {
	t.Parallel()

	loc := message.NewPrinter(language.AmericanEnglish)
	got := render(t, context.Background(), AnalyticsPage(AnalyticsView{
		TotalRemedies: 1200,
		ByScale:       []StatRow{{Label: "C", Count: 3}},
		LowStock:      []RemedyItem{{Label: "Arnica 30C", Detail: "1 left", URL: "/medicines/a"}},
	}, loc))
	for _, want := range []string{"1,200", `<span>C</span><span class="count">3</span>`, `href="/medicines/a">Arnica 30C</a>`} {
		if !strings.Contains(got, want) {
			t.Fatalf("analytics page missing %q in %q", want, got)
		}
	}
}

func TestFamilyPageStates(t *testing.T) {
	t.Parallel()

	disconnected := render(t, context.Background(), FamilyPage(FamilyView{ConnectURL: "/family/connect"}, nil))
	if !strings.Contains(disconnected, `action="/family/connect"`) || !strings.Contains(disconnected, "family.status_disconnected") {
		t.Fatalf("disconnected page = %q", disconnected)
	}

	connected := render(t, context.Background(), FamilyPage(FamilyView{
		Connected:     true,
		FamilyID:      "f1",
		MemberName:    "Alice",
		DisconnectURL: "/family/disconnect",
	}, stubLocalizer{"family.status_connected": "Connected to %s as %s."}))
	if !strings.Contains(connected, "Connected to f1 as Alice.") || !strings.Contains(connected, `action="/family/disconnect"`) {
		t.Fatalf("connected page = %q", connected)
	}
}

func TestErrorStateUsesStatusSpecificCopy(t *testing.T) {
	t.Parallel()

	if got := render(t, context.Background(), ErrorState(404, nil)); !strings.Contains(got, "error.title_not_found") {
		t.Fatalf("404 state = %q", got)
	}
	if got := render(t, context.Background(), ErrorState(503, nil)); !strings.Contains(got, "error.title_server_error") {
		t.Fatalf("503 state = %q", got)
	}
	if got := ErrorPageTitle(418, nil); got != "error.page_title_server_error" {
		t.Fatalf("ErrorPageTitle(418) = %q", got)
	}
}

func TestRenderStopsAtFirstWriteError(t *testing.T) {
	t.Parallel()

	if err := Footer().Render(context.Background(), failingWriter{}); err == nil {
		t.Fatal("expected write error")
	}
}

type stubLocalizer map[string]string

func (s stubLocalizer) Sprintf(key message.Reference, args ...any) string {
	keyString, _ := key.(string)
	if value, ok := s[keyString]; ok {
		return T(nil, value, args...)
	}
	return T(nil, keyString, args...)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func render(t *testing.T, ctx context.Context, component templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := component.Render(ctx, &b); err != nil {
		t.Fatalf("render: %v", err)
	}
	return b.String()
}
