package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/ers-returns/fileupload/pkg/residence"
)

// CompanyPage is the data of the company details page.
type CompanyPage struct {
	Lang      string
	T         Translate
	Action    string
	Residence *residence.Toggler
}

// showSignal names the client signal toggling each section.
var showSignal = map[residence.Section]string{
	residence.SectionCountry:        "country",
	residence.SectionPostcode:       "postcode",
	residence.SectionCompanyReg:     "companyReg",
	residence.SectionCorporationRef: "corporationRef",
}

// ResidenceSignals returns the client signals mirroring t.
func ResidenceSignals(t *residence.Toggler) map[string]any {
	show, hide := t.Sections()
	visible := make(map[string]any, len(show)+len(hide))
	for _, s := range show {
		visible[showSignal[s]] = true
	}
	for _, s := range hide {
		visible[showSignal[s]] = false
	}
	form := t.Form()
	return map[string]any{
		"residence": t.State().Name(),
		"country":   form.Country,
		"postcode":  form.Postcode,
		"show":      visible,
	}
}

func radio(hw *htmlWriter, p CompanyPage, id, value, label string) {
	hw.raw(`<label class="block-label"`)
	hw.attr("for", id)
	hw.raw(`><input type="radio" name="residence"`)
	hw.attr("id", id)
	hw.attr("value", value)
	hw.flag("checked", p.Residence.State().Name() == value)
	hw.attr("data-on-click", "$choice = '"+value+"'; @post('"+p.Action+"')")
	hw.raw(">")
	hw.text(label)
	hw.raw("</label>")
}

func section(hw *htmlWriter, p CompanyPage, s residence.Section, body func()) {
	hw.raw("<div")
	hw.attr("class", "form-group "+string(s))
	hw.attr("data-show", "$show."+showSignal[s])
	hw.hidden(!p.Residence.Visible(s))
	hw.raw(">")
	body()
	hw.raw("</div>")
}

func textField(hw *htmlWriter, id, name, label, value, bind string) {
	hw.raw("<label")
	hw.attr("for", id)
	hw.raw(">")
	hw.text(label)
	hw.raw(`</label><input type="text" class="form-control"`)
	hw.attr("id", id)
	hw.attr("name", name)
	hw.attr("value", value)
	if bind != "" {
		hw.raw(" data-bind-" + bind)
	}
	hw.raw(">")
}

// CompanyPageView renders the company details form.
func CompanyPageView(p CompanyPage) templ.Component {
	title := p.T("company.title")
	return Layout(p.Lang, title, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		form := p.Residence.Form()
		signals := ResidenceSignals(p.Residence)
		signals["choice"] = ""

		hw := newWriter(ctx, w)
		hw.raw(`<h1 class="heading-large">`)
		hw.text(title)
		hw.raw(`</h1><form id="company-form" method="post"`)
		hw.attr("action", p.Action)
		hw.signals(signals)
		hw.raw(`><input type="hidden" name="state"`)
		hw.attr("value", p.Residence.State().Name())
		hw.attr("data-attr-value", "$residence")
		hw.raw(">")

		hw.raw(`<div class="form-group">`)
		textField(hw, "company-name", "companyName", p.T("company.name"), "", "")
		hw.raw("</div>")

		hw.raw(`<fieldset class="form-group inline"><legend>`)
		hw.text(p.T("company.registered_in"))
		hw.raw("</legend>")
		radio(hw, p, "uk-radio-button", residence.UK.Name(), p.T("company.uk"))
		radio(hw, p, "overseas-radio-button", residence.Overseas.Name(), p.T("company.overseas"))
		hw.raw("</fieldset>")

		section(hw, p, residence.SectionCountry, func() {
			textField(hw, "country", "country", p.T("company.country"), form.Country, "country")
		})
		section(hw, p, residence.SectionPostcode, func() {
			textField(hw, "postcode", "postcode", p.T("company.postcode"), form.Postcode, "postcode")
		})
		section(hw, p, residence.SectionCompanyReg, func() {
			textField(hw, "company-reg", "companyReg", p.T("company.company_reg"), "", "")
		})
		section(hw, p, residence.SectionCorporationRef, func() {
			textField(hw, "corporation-ref", "corporationRef", p.T("company.corporation_ref"), "", "")
		})

		hw.raw(`<button type="submit" class="button">`)
		hw.text(p.T("company.continue"))
		hw.raw("</button></form>")
		return hw.err
	}))
}
