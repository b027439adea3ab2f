// Command genholidays builds the Korean holiday tables compiled into the
// krholiday package.
//
// Public holidays are fetched per year from the special-day information
// service of the Korea Astronomy and Space Science Institute, published on
// data.go.kr (SpcdeInfoService/getRestDeInfo). Korea Exchange closures come
// from the configuration file and, optionally, from a KRX market-holiday CSV
// export (EUC-KR encoded, as downloaded from data.krx.co.kr).
//
// Usage:
//
//	DATA_GO_KR_SERVICE_KEY=... go run . \
//		-config ../../data/genholidays.yaml \
//		-krx krx_holidays.csv \
//		-output ../../holidays_data.go
package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"
)

const (
	httpTimeout = 30 * time.Second
	maxRetries  = 3

	// Maximum response size to prevent memory exhaustion.
	maxJSONResponseSize = 1 * 1024 * 1024

	// Sanity floor for public holidays per year; Korea has at least 15.
	minHolidaysPerYear = 10

	userAgent = "kr-holidays-generator/1.0 (https://github.com/rabitt1ove/kr-holidays)"
)

// retryBaseDelay is the base delay between retry attempts (variable for testing).
var retryBaseDelay = 2 * time.Second

// allowedAPIHosts is the set of hostnames the API endpoint may point to.
var allowedAPIHosts = map[string]bool{
	"apis.data.go.kr": true,
}

// config is the YAML configuration file.
type config struct {
	Years []int `yaml:"years"`
	API   struct {
		Endpoint      string `yaml:"endpoint"`
		ServiceKeyEnv string `yaml:"service_key_env"`
	} `yaml:"api"`
	// ExtraHolidays are public holidays the API has not published yet,
	// typically temporary holidays (임시공휴일) designated at short notice.
	ExtraHolidays []entry `yaml:"extra_holidays"`
	// Closures are exchange-only closures such as the year-end closure.
	Closures []entry `yaml:"closures"`
}

type entry struct {
	Date string `yaml:"date"`
	Name string `yaml:"name"`
}

type holiday struct {
	year  int
	month time.Month
	day   int
	name  string
}

func (h holiday) key() string {
	return fmt.Sprintf("%04d-%02d-%02d", h.year, int(h.month), h.day)
}

func main() {
	configPath := flag.String("config", "../../data/genholidays.yaml", "configuration file path")
	krxPath := flag.String("krx", "", "optional KRX market holiday CSV export (EUC-KR)")
	output := flag.String("output", "holidays_data.go", "output file path")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("genholidays: ")

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	serviceKey := os.Getenv(cfg.API.ServiceKeyEnv)
	if serviceKey == "" {
		log.Fatalf("environment variable %s is not set", cfg.API.ServiceKeyEnv)
	}

	client := &http.Client{Timeout: httpTimeout}

	var public []holiday
	for _, year := range cfg.Years {
		hs, err := fetchYear(client, cfg.API.Endpoint, serviceKey, year)
		if err != nil {
			log.Fatalf("failed to fetch %d: %v", year, err)
		}
		public = append(public, hs...)
	}
	extra, err := toHolidays(cfg.ExtraHolidays)
	if err != nil {
		log.Fatalf("extra_holidays: %v", err)
	}
	public = merge(public, extra)

	closures, err := toHolidays(cfg.Closures)
	if err != nil {
		log.Fatalf("closures: %v", err)
	}
	if *krxPath != "" {
		f, err := os.Open(*krxPath)
		if err != nil {
			log.Fatalf("failed to open KRX CSV: %v", err)
		}
		krx, err := parseKRXCSV(transform.NewReader(f, korean.EUCKR.NewDecoder()))
		f.Close()
		if err != nil {
			log.Fatalf("failed to parse KRX CSV: %v", err)
		}
		closures = merge(inYears(krx, cfg.Years), closures)
	}
	closures = exchangeOnly(closures, public)

	if err := validate(cfg.Years, public, closures); err != nil {
		log.Fatalf("validation failed: %v", err)
	}

	src, err := generate(public, closures)
	if err != nil {
		log.Fatalf("failed to generate source: %v", err)
	}

	if err := os.WriteFile(*output, src, 0644); err != nil {
		log.Fatalf("failed to write output: %v", err)
	}

	log.Printf("wrote %d holidays and %d exchange closures to %s", len(public), len(closures), *output)
}

// loadConfig reads and checks the YAML configuration file.
func loadConfig(path string) (*config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseConfig(b)
}

func parseConfig(b []byte) (*config, error) {
	var cfg config
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decoding YAML: %w", err)
	}
	if len(cfg.Years) == 0 {
		return nil, errors.New("no years configured")
	}
	if cfg.API.ServiceKeyEnv == "" {
		return nil, errors.New("api.service_key_env is required")
	}
	if err := validateEndpoint(cfg.API.Endpoint); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validateEndpoint checks that the API endpoint points to an allowed host.
func validateEndpoint(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if parsed.Scheme != "https" {
		return fmt.Errorf("URL %q: only HTTPS is allowed", rawURL)
	}
	if !allowedAPIHosts[parsed.Hostname()] {
		return fmt.Errorf("URL %q: host %q is not in the allowed list", rawURL, parsed.Hostname())
	}
	return nil
}

// apiResponse is the JSON envelope of the special-day service.
type apiResponse struct {
	Response struct {
		Header struct {
			ResultCode string `json:"resultCode"`
			ResultMsg  string `json:"resultMsg"`
		} `json:"header"`
		Body struct {
			// Items is an empty string when there are no results.
			Items      json.RawMessage `json:"items"`
			TotalCount int             `json:"totalCount"`
		} `json:"body"`
	} `json:"response"`
}

type apiItem struct {
	DateName  string `json:"dateName"`
	IsHoliday string `json:"isHoliday"`
	Locdate   int    `json:"locdate"`
}

// fetchYear fetches the public holidays of one year.
func fetchYear(client *http.Client, endpoint, serviceKey string, year int) ([]holiday, error) {
	q := url.Values{}
	q.Set("solYear", strconv.Itoa(year))
	q.Set("numOfRows", "100")
	q.Set("_type", "json")
	q.Set("ServiceKey", serviceKey)

	body, err := fetchWithRetry(client, endpoint+"?"+q.Encode())
	if err != nil {
		return nil, err
	}
	hs, err := parseResponse(body)
	if err != nil {
		return nil, err
	}
	for _, h := range hs {
		if h.year != year {
			return nil, fmt.Errorf("response for %d contains %s", year, h.key())
		}
	}
	log.Printf("  %d: %d holidays", year, len(hs))
	return hs, nil
}

// fetchWithRetry fetches a URL with exponential backoff retries.
func fetchWithRetry(client *http.Client, rawURL string) ([]byte, error) {
	// The service key must not end up in logs.
	logURL := rawURL
	if i := strings.IndexByte(rawURL, '?'); i >= 0 {
		logURL = rawURL[:i]
	}

	var lastErr error
	for attempt := range maxRetries {
		if attempt > 0 {
			delay := retryBaseDelay * time.Duration(1<<(attempt-1))
			log.Printf("  retrying in %v (attempt %d/%d)", delay, attempt+1, maxRetries)
			time.Sleep(delay)
		}

		log.Printf("fetching %s", logURL)
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			var uerr *url.Error
			if errors.As(err, &uerr) {
				uerr.URL = logURL
			}
			lastErr = fmt.Errorf("GET %s: %w", logURL, err)
			log.Printf("  failed: %v", err)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			resp.Body.Close()
			lastErr = fmt.Errorf("GET %s: status %d", logURL, resp.StatusCode)
			log.Printf("  failed: status %d (retryable)", resp.StatusCode)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("GET %s: status %d", logURL, resp.StatusCode)
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxJSONResponseSize))
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("GET %s: reading body: %w", logURL, err)
			continue
		}
		return body, nil
	}
	return nil, lastErr
}

// parseResponse decodes a special-day service response and returns the
// entries flagged as holidays.
func parseResponse(body []byte) ([]holiday, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if code := resp.Response.Header.ResultCode; code != "00" {
		return nil, fmt.Errorf("API error %s: %s", code, resp.Response.Header.ResultMsg)
	}

	items, err := decodeItems(resp.Response.Body.Items)
	if err != nil {
		return nil, err
	}

	var holidays []holiday
	for _, it := range items {
		if it.IsHoliday != "Y" {
			continue
		}
		t, err := time.Parse("20060102", strconv.Itoa(it.Locdate))
		if err != nil {
			return nil, fmt.Errorf("invalid locdate %d: %w", it.Locdate, err)
		}
		holidays = append(holidays, holiday{
			year:  t.Year(),
			month: t.Month(),
			day:   t.Day(),
			name:  strings.TrimSpace(it.DateName),
		})
	}
	return holidays, nil
}

// decodeItems handles the three shapes the service uses for "items": an
// empty string, an object holding a single item, or an object holding an
// array of items.
func decodeItems(raw json.RawMessage) ([]apiItem, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == `""` || string(trimmed) == "null" {
		return nil, nil
	}

	var wrapper struct {
		Item json.RawMessage `json:"item"`
	}
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return nil, fmt.Errorf("decoding items: %w", err)
	}
	item := bytes.TrimSpace(wrapper.Item)
	if len(item) == 0 {
		return nil, nil
	}
	if item[0] == '[' {
		var items []apiItem
		if err := json.Unmarshal(item, &items); err != nil {
			return nil, fmt.Errorf("decoding items: %w", err)
		}
		return items, nil
	}
	var single apiItem
	if err := json.Unmarshal(item, &single); err != nil {
		return nil, fmt.Errorf("decoding item: %w", err)
	}
	return []apiItem{single}, nil
}

// parseKRXCSV parses a KRX market holiday export. The first column holds
// the date (yyyy-MM-dd, optionally followed by the weekday) and the last
// column the description. r must already be decoded to UTF-8.
func parseKRXCSV(r io.Reader) ([]holiday, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("unexpected header columns: %d (expected at least 2)", len(header))
	}
	if !strings.Contains(header[0], "일자") {
		return nil, fmt.Errorf("unexpected header: %q (expected to contain '일자')", header[0])
	}

	var holidays []holiday
	lineNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum+1, err)
		}
		lineNum++

		dateStr := strings.TrimSpace(record[0])
		if dateStr == "" {
			continue
		}
		if len(dateStr) > len("2006-01-02") {
			dateStr = dateStr[:len("2006-01-02")]
		}
		t, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid date %q: %w", lineNum, record[0], err)
		}

		name := "휴장일"
		if len(record) > 1 {
			if desc := strings.TrimSpace(record[len(record)-1]); desc != "" {
				name = desc
			}
		}
		holidays = append(holidays, holiday{
			year:  t.Year(),
			month: t.Month(),
			day:   t.Day(),
			name:  name,
		})
	}
	return holidays, nil
}

func toHolidays(entries []entry) ([]holiday, error) {
	holidays := make([]holiday, 0, len(entries))
	for _, e := range entries {
		t, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", e.Date, err)
		}
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("%s: name is required", e.Date)
		}
		holidays = append(holidays, holiday{year: t.Year(), month: t.Month(), day: t.Day(), name: e.Name})
	}
	return holidays, nil
}

// merge returns base with overrides applied; an override replaces the base
// entry on the same date.
func merge(base, overrides []holiday) []holiday {
	byDate := make(map[string]holiday, len(base)+len(overrides))
	for _, h := range base {
		byDate[h.key()] = h
	}
	for _, h := range overrides {
		byDate[h.key()] = h
	}
	out := make([]holiday, 0, len(byDate))
	for _, h := range byDate {
		out = append(out, h)
	}
	sortHolidays(out)
	return out
}

// inYears keeps the holidays that fall in one of the given years.
func inYears(holidays []holiday, years []int) []holiday {
	want := make(map[int]bool, len(years))
	for _, y := range years {
		want[y] = true
	}
	var out []holiday
	for _, h := range holidays {
		if want[h.year] {
			out = append(out, h)
		}
	}
	return out
}

// exchangeOnly drops closures that are already public holidays and those
// falling on weekends, when the exchange is closed anyway.
func exchangeOnly(closures, public []holiday) []holiday {
	isPublic := make(map[string]bool, len(public))
	for _, h := range public {
		isPublic[h.key()] = true
	}
	var out []holiday
	for _, h := range closures {
		wd := time.Date(h.year, h.month, h.day, 0, 0, 0, 0, time.UTC).Weekday()
		if isPublic[h.key()] || wd == time.Saturday || wd == time.Sunday {
			continue
		}
		out = append(out, h)
	}
	return out
}

// validate checks the merged tables before they are written.
func validate(years []int, public, closures []holiday) error {
	want := make(map[int]bool, len(years))
	perYear := make(map[int]int, len(years))
	for _, y := range years {
		want[y] = true
	}
	for _, h := range public {
		if !want[h.year] {
			return fmt.Errorf("holiday %s outside configured years", h.key())
		}
		perYear[h.year]++
	}
	for _, h := range closures {
		if !want[h.year] {
			return fmt.Errorf("closure %s outside configured years", h.key())
		}
	}
	for _, y := range years {
		if perYear[y] < minHolidaysPerYear {
			return fmt.Errorf("%d: expected at least %d holidays, got %d", y, minHolidaysPerYear, perYear[y])
		}
	}
	return nil
}

func sortHolidays(holidays []holiday) {
	sort.Slice(holidays, func(i, j int) bool {
		if holidays[i].year != holidays[j].year {
			return holidays[i].year < holidays[j].year
		}
		if holidays[i].month != holidays[j].month {
			return holidays[i].month < holidays[j].month
		}
		return holidays[i].day < holidays[j].day
	})
}

// monthConstName returns the time.Month constant name (e.g., "time.January").
func monthConstName(m time.Month) string {
	return "time." + m.String()
}

// generate produces a formatted Go source file containing both tables.
func generate(public, closures []holiday) ([]byte, error) {
	sortHolidays(public)
	sortHolidays(closures)

	var b strings.Builder
	b.WriteString("// Code generated by cmd/genholidays; DO NOT EDIT.\n\n")
	b.WriteString("package krholiday\n\n")
	b.WriteString("import \"time\"\n\n")
	writeTable(&b, "builtinHolidays", public)
	b.WriteString("\n")
	writeTable(&b, "builtinClosures", closures)

	return format.Source([]byte(b.String()))
}

func writeTable(b *strings.Builder, name string, holidays []holiday) {
	fmt.Fprintf(b, "var %s = map[Date]string{\n", name)
	currentYear := 0
	for _, h := range holidays {
		if h.year != currentYear {
			if currentYear != 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(b, "\t// %d\n", h.year)
			currentYear = h.year
		}
		fmt.Fprintf(b, "\t{%d, %s, %d}: %q,\n", h.year, monthConstName(h.month), h.day, h.name)
	}
	b.WriteString("}\n")
}
