package reports

import (
	"io"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"max.ks1230/yachtfleet/internal/entity/rental"
	"max.ks1230/yachtfleet/internal/logger"
)

const noData = "-"

type config interface {
	ReportYear() int
	ReportLocale() string
}

type Generator struct {
	year int
	lang language.Tag
}

func NewGenerator(config config) *Generator {
	tag, err := language.Parse(config.ReportLocale())
	if err != nil {
		logger.Warn("unknown report locale, using English",
			zap.String("locale", config.ReportLocale()), zap.Error(err))
		tag = language.English
	}
	return &Generator{
		year: config.ReportYear(),
		lang: tag,
	}
}

// Report holds the yearly rental statistics together with the revenue of one
// selected month.
type Report struct {
	Year            int
	Month           time.Month
	MonthlyRevenue  int64
	AnnualRevenue   int64
	MostExpensive   rental.Record
	HasRentals      bool
	UniqueYachts    int
	MostRentedName  string
	MostRentedCount int
	AverageDuration float64

	lang language.Tag
}

func (g *Generator) Generate(records []rental.Record, month time.Month) (Report, error) {
	logger.Info("Generate - start", zap.Int("month", int(month)), zap.Int("rentals", len(records)))
	defer logger.Info("Generate - end")

	if month < time.January || month > time.December {
		return Report{}, errors.Errorf("month %d out of range", month)
	}

	report := Report{
		Year:            g.year,
		Month:           month,
		MonthlyRevenue:  MonthlyRevenue(records, month, g.year),
		AnnualRevenue:   AnnualRevenue(records),
		UniqueYachts:    UniqueYachts(records),
		AverageDuration: AverageDuration(records),
		lang:            g.lang,
	}
	report.MostExpensive, report.HasRentals = MostExpensive(records)
	report.MostRentedName, report.MostRentedCount, _ = MostRented(records)
	return report, nil
}

// Render writes the six report lines. Money is grouped by thousands in the
// report locale.
func (r Report) Render(w io.Writer) error {
	p := message.NewPrinter(r.lang)

	expensiveName, mostRentedName := noData, noData
	if r.HasRentals {
		expensiveName = r.MostExpensive.Name
		mostRentedName = r.MostRentedName
	}

	lines := []struct {
		format string
		args   []interface{}
	}{
		{"A(z) %s. hónap bevétele: %d euró\n", []interface{}{strconv.Itoa(int(r.Month)), r.MonthlyRevenue}},
		{"A teljes %s-es éves bevétel: %d euró\n", []interface{}{strconv.Itoa(r.Year), r.AnnualRevenue}},
		{"A legdrágább bérlés az %s yacht volt, teljes ár: %d euró\n", []interface{}{expensiveName, r.MostExpensive.TotalPrice()}},
		{"Összesen %s különböző yachtot béreltek ki.\n", []interface{}{strconv.Itoa(r.UniqueYachts)}},
		{"A legtöbbször bérelt yacht: %s (%s bérlés)\n", []interface{}{mostRentedName, strconv.Itoa(r.MostRentedCount)}},
		{"Átlagos bérlési időtartam: %s nap\n", []interface{}{strconv.FormatFloat(r.AverageDuration, 'f', 2, 64)}},
	}
	for _, l := range lines {
		if _, err := p.Fprintf(w, l.format, l.args...); err != nil {
			return errors.Wrap(err, "render report")
		}
	}
	return nil
}
