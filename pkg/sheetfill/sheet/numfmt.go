package sheet

import (
	"strings"

	"github.com/ukaji3/sheetfill-go/pkg/sheetfill/models"
	"github.com/xuri/nfp"
)

// builtinFormats maps the built-in number format IDs of the xlsx format to
// their format type. IDs not listed are generic.
var builtinFormats = map[int]models.FormatType{
	1:  models.FormatNumber,
	2:  models.FormatNumber,
	3:  models.FormatNumber,
	4:  models.FormatNumber,
	9:  models.FormatPercent,
	10: models.FormatPercent,
	11: models.FormatNumber,
	12: models.FormatNumber,
	13: models.FormatNumber,
	14: models.FormatDate,
	15: models.FormatDate,
	16: models.FormatDate,
	17: models.FormatDate,
	18: models.FormatTime,
	19: models.FormatTime,
	20: models.FormatTime,
	21: models.FormatTime,
	22: models.FormatDate,
	37: models.FormatNumber,
	38: models.FormatNumber,
	39: models.FormatNumber,
	40: models.FormatNumber,
	45: models.FormatTime,
	46: models.FormatTime,
	47: models.FormatTime,
	48: models.FormatNumber,
	49: models.FormatText,
}

// builtinIDs is the built-in format written for each format type.
var builtinIDs = map[models.FormatType]int{
	models.FormatGeneric: 0,
	models.FormatNumber:  2,
	models.FormatPercent: 10,
	models.FormatDate:    14,
	models.FormatTime:    21,
	models.FormatText:    49,
}

var builtinCodes = map[int]string{
	0:  "General",
	2:  "0.00",
	10: "0.00%",
	14: "mm-dd-yy",
	21: "h:mm:ss",
	49: "@",
}

func builtinCode(ft models.FormatType) string {
	return builtinCodes[builtinIDs[ft]]
}

// BuiltinFormatType returns the format type of a built-in number format.
func BuiltinFormatType(id int) models.FormatType {
	if ft, ok := builtinFormats[id]; ok {
		return ft
	}
	return models.FormatGeneric
}

// ClassifyNumFmt returns the format type of a custom number format code.
// Only the first section, which formats positive numbers, is inspected.
func ClassifyNumFmt(code string) models.FormatType {
	if code == "" || strings.EqualFold(code, "general") {
		return models.FormatGeneric
	}
	parser := nfp.NumberFormatParser()
	sections := parser.Parse(code)
	if len(sections) == 0 {
		return models.FormatGeneric
	}

	var date, clock, minutes, percent, number, text bool
	for _, tok := range sections[0].Items {
		switch tok.TType {
		case nfp.TokenTypeDateTimes, nfp.TokenTypeElapsedDateTimes:
			v := strings.ToLower(tok.TValue)
			switch {
			case strings.ContainsAny(v, "yd"), strings.HasPrefix(v, "e"):
				date = true
			case strings.ContainsAny(v, "hs"), strings.Contains(v, "am/pm"), v == "a/p":
				clock = true
			case strings.Contains(v, "m"):
				minutes = true
			}
		case nfp.TokenTypePercent:
			percent = true
		case nfp.TokenTypeZeroPlaceHolder, nfp.TokenTypeHashPlaceHolder, nfp.TokenTypeDigitalPlaceHolder:
			number = true
		case nfp.TokenTypeTextPlaceHolder:
			text = true
		}
	}

	switch {
	// "m" is a month unless hours or seconds are shown with it.
	case date, minutes && !clock:
		return models.FormatDate
	case clock:
		return models.FormatTime
	case percent:
		return models.FormatPercent
	case number:
		return models.FormatNumber
	case text:
		return models.FormatText
	}
	return models.FormatGeneric
}
