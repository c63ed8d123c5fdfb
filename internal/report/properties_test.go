package report

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/docker-entrypoint/internal/model"
	"github.com/shinji-kodama/docker-entrypoint/internal/result"
)

// fake is a record with two properties, declared in order.
type fake struct {
	prop1 string
	prop2 string
}

func (f *fake) Properties() []model.Property {
	return []model.Property{
		{Name: "prop1", Value: f.prop1},
		{Name: "prop2", Value: f.prop2},
	}
}

func newFake() *fake {
	return &fake{prop1: "prop1", prop2: "prop2"}
}

// TestFormatProperties verifies the rendering with and without a title.
func TestFormatProperties(t *testing.T) {
	tests := []struct {
		name string
		opts []FormatOption
		want string
	}{
		{
			name: "no title",
			want: "prop1: prop1\nprop2: prop2\n",
		},
		{
			name: "blank title",
			opts: []FormatOption{WithTitle("   ")},
			want: "prop1: prop1\nprop2: prop2\n",
		},
		{
			name: "title",
			opts: []FormatOption{WithTitle("message")},
			want: "message:\n\tprop1: prop1\n\tprop2: prop2\n",
		},
		{
			name: "title value string",
			opts: []FormatOption{WithTitleValue("message")},
			want: "message:\n\tprop1: prop1\n\tprop2: prop2\n",
		},
		{
			name: "title value nil",
			opts: []FormatOption{WithTitleValue(nil)},
			want: "prop1: prop1\nprop2: prop2\n",
		},
		{
			name: "explicit indent without title",
			opts: []FormatOption{WithIndent(2)},
			want: "\t\tprop1: prop1\n\t\tprop2: prop2\n",
		},
		{
			name: "title without indent",
			opts: []FormatOption{WithTitle("message"), WithIndent(0)},
			want: "message:\nprop1: prop1\nprop2: prop2\n",
		},
		{
			name: "negative indent is zero",
			opts: []FormatOption{WithIndent(-3)},
			want: "prop1: prop1\nprop2: prop2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FormatProperties(newFake(), tt.opts...).Value()
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestFormatProperties_Empty verifies that a record without properties
// yields only the header.
func TestFormatProperties_Empty(t *testing.T) {
	got, ok := FormatProperties(model.PropertyList{}, WithTitle("empty")).Value()
	require.True(t, ok)
	assert.Equal(t, "empty:\n", got)

	// An empty string is still a present value.
	r := FormatProperties(model.PropertyList{})
	assert.True(t, r.Success())
}

// TestFormatProperties_Validation verifies the two argument errors.
func TestFormatProperties_Validation(t *testing.T) {
	t.Run("nil object", func(t *testing.T) {
		assertValidation(t, FormatProperties(nil), result.DefaultValidationTitle, MsgObjectRequired)
	})

	t.Run("typed nil object", func(t *testing.T) {
		var f *fake
		assertValidation(t, FormatProperties(f), result.DefaultValidationTitle, MsgObjectRequired)
	})

	t.Run("non-string title", func(t *testing.T) {
		r := FormatProperties(newFake(), WithTitleValue([]string{"not string"}))
		assertValidation(t, r, result.DefaultValidationTitle, MsgTitleNotString)
	})
}

// TestLogProperties verifies that the formatted text is logged once at the
// requested level.
func TestLogProperties(t *testing.T) {
	for _, level := range []logrus.Level{logrus.DebugLevel, logrus.InfoLevel, logrus.WarnLevel} {
		t.Run(level.String(), func(t *testing.T) {
			logger, hook := newTestLogger(t)

			r := LogProperties(logger, level, newFake(), WithTitle("message"))
			require.True(t, r.Success())

			entries := hook.AllEntries()
			require.Len(t, entries, 1)
			assert.Equal(t, level, entries[0].Level)
			assert.Equal(t, "message:\n\tprop1: prop1\n\tprop2: prop2\n", entries[0].Message)
		})
	}
}

// TestLogProperties_Validation verifies that nothing is logged on bad input.
func TestLogProperties_Validation(t *testing.T) {
	assertValidation(t, LogProperties(nil, logrus.InfoLevel, newFake()),
		result.DefaultValidationTitle, MsgLoggerRequired)

	logger, hook := newTestLogger(t)
	assertValidation(t, LogProperties(logger, logrus.InfoLevel, nil),
		result.DefaultValidationTitle, MsgObjectRequired)
	assert.Empty(t, hook.AllEntries())
}
