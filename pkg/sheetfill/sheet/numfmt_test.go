package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/sheetfill-go/pkg/sheetfill/models"
)

func TestClassifyNumFmt(t *testing.T) {
	tests := []struct {
		code string
		want models.FormatType
	}{
		{"", models.FormatGeneric},
		{"General", models.FormatGeneric},
		{"yyyy-mm-dd", models.FormatDate},
		{"d-mmm-yy", models.FormatDate},
		{"mmm", models.FormatDate},
		{"h:mm", models.FormatTime},
		{"hh:mm:ss AM/PM", models.FormatTime},
		{"[h]:mm", models.FormatTime},
		{"0.0%", models.FormatPercent},
		{"#,##0.00", models.FormatNumber},
		{"@", models.FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyNumFmt(tt.code))
		})
	}
}

func TestBuiltinFormatType(t *testing.T) {
	assert.Equal(t, models.FormatGeneric, BuiltinFormatType(0))
	assert.Equal(t, models.FormatPercent, BuiltinFormatType(9))
	assert.Equal(t, models.FormatDate, BuiltinFormatType(14))
	assert.Equal(t, models.FormatDate, BuiltinFormatType(22))
	assert.Equal(t, models.FormatTime, BuiltinFormatType(46))
	assert.Equal(t, models.FormatGeneric, BuiltinFormatType(200))

	for ft, id := range builtinIDs {
		assert.Equal(t, ft, BuiltinFormatType(id), "format %s", ft)
	}
}
