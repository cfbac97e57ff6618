package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bunx-io/salonx-api/internal/application/analytics"
)

func TestResolveDateRange_DatasExplicitasTemPrioridade(t *testing.T) {
	r := analytics.ResolveDateRange("month", "2026-08-01", "2026-08-15")

	require.NotNil(t, r.Start)
	require.NotNil(t, r.End)
	assert.Equal(t, "2026-08-01", r.Start.Format("2006-01-02"))
	// O fim é exclusivo: o dia final inteiro entra no intervalo
	assert.Equal(t, "2026-08-16", r.End.Format("2006-01-02"))
}

func TestResolveDateRange_PeriodoHoje(t *testing.T) {
	r := analytics.ResolveDateRange("today", "", "")

	require.NotNil(t, r.Start)
	assert.Nil(t, r.End)

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	assert.True(t, r.Start.Equal(midnight))
}

func TestResolveDateRange_PeriodosRelativos(t *testing.T) {
	cases := []struct {
		period string
		days   int
	}{
		{"week", 7},
		{"month", 30},
		{"year", 365},
	}
	for _, tc := range cases {
		t.Run(tc.period, func(t *testing.T) {
			r := analytics.ResolveDateRange(tc.period, "", "")
			require.NotNil(t, r.Start)
			assert.Nil(t, r.End)

			expected := time.Now().AddDate(0, 0, -tc.days)
			assert.WithinDuration(t, expected, *r.Start, time.Minute)
		})
	}
}

func TestResolveDateRange_DesconhecidoDevolveIntervaloAberto(t *testing.T) {
	r := analytics.ResolveDateRange("quarter", "", "")
	assert.Nil(t, r.Start)
	assert.Nil(t, r.End)

	r = analytics.ResolveDateRange("", "", "")
	assert.Nil(t, r.Start)
	assert.Nil(t, r.End)
}

func TestResolveDateRange_DataInvalidaCaiNoPeriodo(t *testing.T) {
	r := analytics.ResolveDateRange("week", "31/08/2026", "2026-09-01")

	require.NotNil(t, r.Start)
	assert.Nil(t, r.End)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, -7), *r.Start, time.Minute)
}
