package declared

import (
	"slices"
	"strings"

	"github.com/ers-returns/fileupload/pkg/validator"
)

// Scheme is a share scheme type.
type Scheme string

const (
	SchemeCSOP  Scheme = "CSOP"
	SchemeEMI   Scheme = "EMI"
	SchemeSAYE  Scheme = "SAYE"
	SchemeSIP   Scheme = "SIP"
	SchemeOther Scheme = "OTHER"
)

// Schemes lists the scheme types in display order.
var Schemes = []Scheme{SchemeCSOP, SchemeEMI, SchemeSAYE, SchemeSIP, SchemeOther}

var catalogue = map[Scheme][]string{
	SchemeCSOP: {
		"CSOP_OptionsGranted_V4.csv",
		"CSOP_OptionsRCL_V4.csv",
		"CSOP_OptionsExercised_V4.csv",
	},
	SchemeEMI: {
		"EMI40_Adjustments_V4.csv",
		"EMI40_Replaced_V4.csv",
		"EMI40_RLC_V4.csv",
		"EMI40_NonTaxable_V4.csv",
		"EMI40_Taxable_V4.csv",
	},
	SchemeSAYE: {
		"SAYE_Granted_V4.csv",
		"SAYE_RCL_V4.csv",
		"SAYE_Exercised_V4.csv",
	},
	SchemeSIP: {
		"SIP_Awards_V4.csv",
		"SIP_Out_V4.csv",
	},
	SchemeOther: {
		"Other_Grants_V4.csv",
		"Other_Options_V4.csv",
		"Other_Acquisition_V4.csv",
		"Other_RestrictedSecurities_V4.csv",
		"Other_OtherBenefits_V4.csv",
		"Other_Convertible_V4.csv",
		"Other_Notional_V4.csv",
		"Other_Enhancement_V4.csv",
		"Other_Sold_V4.csv",
	},
}

// ParseScheme maps a form value to a Scheme, ignoring case.
func ParseScheme(v string) (Scheme, error) {
	s := Scheme(strings.ToUpper(strings.TrimSpace(v)))
	if _, ok := catalogue[s]; !ok {
		return "", ErrUnknownScheme
	}
	return s, nil
}

// Files returns the CSV file names a return of scheme s may contain.
func (s Scheme) Files() []string {
	return slices.Clone(catalogue[s])
}

// Declaration is the set of files a user will upload for one return.
type Declaration struct {
	Scheme Scheme   `json:"scheme" bson:"scheme"`
	Files  []string `json:"files" bson:"files"`
}

// NewDeclaration validates the chosen files against the scheme catalogue.
// Duplicates are dropped; the catalogue order is kept.
func NewDeclaration(scheme string, files []string) (Declaration, error) {
	rules := []validator.Rule{
		validator.Required("scheme", scheme),
		validator.InListString("scheme", strings.ToUpper(strings.TrimSpace(scheme)), schemeNames()).Skip(strings.TrimSpace(scheme) == ""),
		validator.RequiredSlice("files", files),
	}
	s, _ := ParseScheme(scheme)
	allowed := catalogue[s]
	for _, f := range files {
		rules = append(rules, validator.InListString("files", f, allowed).Skip(allowed == nil))
	}
	if err := validator.Apply(rules...); err != nil {
		return Declaration{}, err
	}

	d := Declaration{Scheme: s}
	for _, name := range allowed {
		if slices.Contains(files, name) {
			d.Files = append(d.Files, name)
		}
	}
	return d, nil
}

func schemeNames() []string {
	names := make([]string, len(Schemes))
	for i, s := range Schemes {
		names[i] = string(s)
	}
	return names
}
