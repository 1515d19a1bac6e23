// Package output serializes fill results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/sheetfill-go/pkg/sheetfill/lists"
	"github.com/ukaji3/sheetfill-go/pkg/sheetfill/models"
)

// ToJSON serializes a fill report to JSON.
func ToJSON(report *models.FillReport, pretty bool) ([]byte, error) {
	return marshal(report, pretty)
}

// ListsView is the serialized form of a set of reference lists.
type ListsView struct {
	Locale      string     `json:"locale,omitempty"`
	Months      []string   `json:"months"`
	ShortMonths []string   `json:"short_months"`
	Days        []string   `json:"days"`
	ShortDays   []string   `json:"short_days"`
	Custom      [][]string `json:"custom,omitempty"`
}

// NewListsView flattens ref for serialization.
func NewListsView(locale string, ref *lists.ReferenceLists) ListsView {
	return ListsView{
		Locale:      locale,
		Months:      ref.Months.Names(),
		ShortMonths: ref.ShortMonths.Names(),
		Days:        ref.Days.Names(),
		ShortDays:   ref.ShortDays.Names(),
		Custom:      ref.Custom.Groups(),
	}
}

// ListsToJSON serializes reference lists to JSON.
func ListsToJSON(view ListsView, pretty bool) ([]byte, error) {
	return marshal(view, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
