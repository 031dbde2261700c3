package config

import "github.com/pkg/errors"

const (
	defaultExpensesFile = "yacht_koltsegek_2024.csv"
	defaultRentalsFile  = "yacht_berlesek_2024.csv"
	defaultReportYear   = 2024
	defaultLocale       = "en"
)

type AppConfig struct {
	ExpensesPath string `yaml:"expenses-file"`
	RentalsPath  string `yaml:"rentals-file"`
	Year         int    `yaml:"report-year"`
	Locale       string `yaml:"report-locale"`
}

func defaultApp() AppConfig {
	return AppConfig{
		ExpensesPath: defaultExpensesFile,
		RentalsPath:  defaultRentalsFile,
		Year:         defaultReportYear,
		Locale:       defaultLocale,
	}
}

func (s *AppConfig) validate() error {
	if s.ExpensesPath == "" || s.RentalsPath == "" {
		return errors.New("data file paths cannot be empty")
	}
	if s.Year < 1 || s.Year > 9999 {
		return errors.Errorf("invalid report year %d", s.Year)
	}
	return nil
}

func (s *AppConfig) ExpensesFile() string {
	return s.ExpensesPath
}

func (s *AppConfig) RentalsFile() string {
	return s.RentalsPath
}

func (s *AppConfig) ReportYear() int {
	return s.Year
}

func (s *AppConfig) ReportLocale() string {
	return s.Locale
}
