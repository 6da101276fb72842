package configuration

import (
	"net/url"
	"strings"
	"time"

	"github.com/app-nerds/configinator"
)

type Config struct {
	APIBaseURL            string `flag:"apiurl" env:"API_BASE_URL" default:"https://api.harvardartmuseums.org" description:"Base URL of the catalog API"`
	APIKey                string `flag:"apikey" env:"API_KEY" default:"" description:"Catalog API key"`
	CacheDirectory        string `flag:"ccd" env:"CACHE_DIRECTORY" default:"./cache" description:"Thumbnail cache directory"`
	DataMigrationDir      string `flag:"dmd" env:"DATA_MIGRATION_DIR" default:"./sql-migrations" description:"Migration folder"`
	DSN                   string `flag:"dsn" env:"DSN" default:"file:./data/artbrowser.db" description:"Database connection"`
	Host                  string `flag:"host" env:"HOST" default:"localhost:8080" description:"The address and port to bind the HTTP server to"`
	ImageHosts            string `flag:"imagehosts" env:"IMAGE_HOSTS" default:"nrs.harvard.edu,ids.lib.harvard.edu" description:"Comma separated hosts the thumbnail proxy may fetch from"`
	LogLevel              string `flag:"loglevel" env:"LOG_LEVEL" default:"debug" description:"The log level to use. Valid values are 'debug', 'info', 'warn', and 'error'"`
	LookupMaxAgeHours     int    `flag:"lookupmaxage" env:"LOOKUP_MAX_AGE_HOURS" default:"24" description:"Hours a cached century or classification list stays valid"`
	RequestTimeoutSeconds int    `flag:"timeout" env:"REQUEST_TIMEOUT_SECONDS" default:"15" description:"Timeout for a single catalog API call"`
	RequestsPerSecond     int    `flag:"rps" env:"REQUESTS_PER_SECOND" default:"5" description:"Maximum catalog API calls per second"`
	SessionIdleMinutes    int    `flag:"sessionidle" env:"SESSION_IDLE_MINUTES" default:"60" description:"Minutes before an idle browser session is dropped"`
	SessionSweepSchedule  string `flag:"sessionsweep" env:"SESSION_SWEEP_SCHEDULE" default:"*/10 * * * *" description:"Cron schedule for dropping idle sessions"`
}

func LoadConfig() Config {
	config := Config{}
	configinator.Behold(&config)
	return config
}

func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

func (c *Config) SessionIdleTimeout() time.Duration {
	return time.Duration(c.SessionIdleMinutes) * time.Minute
}

func (c *Config) LookupMaxAge() time.Duration {
	return time.Duration(c.LookupMaxAgeHours) * time.Hour
}

// IsAllowedImageHost reports whether the thumbnail proxy may fetch rawURL.
// Subdomains of an allowed host are accepted.
func (c *Config) IsAllowedImageHost(rawURL string) bool {
	u, err := url.Parse(rawURL)

	if err != nil || (u.Scheme != "https" && u.Scheme != "http") {
		return false
	}

	host := strings.ToLower(u.Hostname())

	for _, allowed := range strings.Split(c.ImageHosts, ",") {
		allowed = strings.ToLower(strings.TrimSpace(allowed))

		if allowed == "" {
			continue
		}

		if host == allowed || strings.HasSuffix(host, "."+allowed) {
			return true
		}
	}

	return false
}
