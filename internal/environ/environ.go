// Package environ reads the build and support metadata that the container
// image exposes through environment variables.
//
// Lookups go through github.com/spf13/viper so every key has a built-in
// default: the entrypoint never sees an empty maintainer or version, it
// sees "No Data!" or "latest" instead. An optional build-info file in dotenv
// format (parsed with github.com/joho/godotenv) can supply values baked into
// the image at build time; real environment variables always take precedence
// over it.
package environ

import (
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/shinji-kodama/docker-entrypoint/internal/model"
	"github.com/shinji-kodama/docker-entrypoint/internal/result"
)

// NoData is the default for every field that has no value.
const NoData = "No Data!"

// DefaultDockerVersion is the default image version when DOCKER_VERSION is
// not set.
const DefaultDockerVersion = "latest"

// Environment variable names read by the Reader.
const (
	EnvMaintainer    = "MAINTAINER"
	EnvDockerVersion = "DOCKER_VERSION"
	EnvBuildDate     = "BUILD_DATE"
	EnvRepositoryURL = "VCS_URL"
	EnvBugReport     = "BUG_REPORT"
)

// Viper keys. Kept separate from the variable names so the build-info file
// and the environment can both feed the same key.
const (
	keyMaintainer    = "maintainer"
	keyDockerVersion = "docker_version"
	keyBuildDate     = "build_date"
	keyRepositoryURL = "vcs_url"
	keyBugReport     = "bug_report"
)

// binding ties a viper key to its environment variable and default.
type binding struct {
	key      string
	env      string
	fallback string
}

var bindings = []binding{
	{keyMaintainer, EnvMaintainer, NoData},
	{keyDockerVersion, EnvDockerVersion, DefaultDockerVersion},
	{keyBuildDate, EnvBuildDate, NoData},
	{keyRepositoryURL, EnvRepositoryURL, NoData},
	{keyBugReport, EnvBugReport, NoData},
}

// Info is a snapshot of the support metadata. It is a plain value and is
// never modified after Environments returns it.
type Info struct {
	Maintainer    string
	DockerVersion string
	BuildDate     string
	RepositoryURL string
	BugReport     string
}

// Properties satisfies model.Propertied so Info can be dumped with
// report.FormatProperties.
func (i Info) Properties() []model.Property {
	return []model.Property{
		{Name: "maintainer", Value: i.Maintainer},
		{Name: "docker_version", Value: i.DockerVersion},
		{Name: "build_date", Value: i.BuildDate},
		{Name: "vcs_url", Value: i.RepositoryURL},
		{Name: "bug_report", Value: i.BugReport},
	}
}

// Reader looks up the support metadata with defaulting.
//
// A Reader is safe for concurrent reads once LoadBuildInfo (if used) has
// returned.
type Reader struct {
	v *viper.Viper
}

// NewReader creates a Reader bound to the process environment.
func NewReader() *Reader {
	v := viper.New()
	for _, b := range bindings {
		v.SetDefault(b.key, b.fallback)
		// BindEnv only fails when called without a key.
		_ = v.BindEnv(b.key, b.env)
	}
	return &Reader{v: v}
}

// LoadBuildInfo reads a dotenv-style file and uses its values in place of
// the built-in defaults. Variables named in the file use the same names as
// the environment (MAINTAINER, DOCKER_VERSION, ...); unknown names and empty
// values are ignored. A missing file is not an error.
func (r *Reader) LoadBuildInfo(path string) error {
	values, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read build info file %q: %w", path, err)
	}

	for _, b := range bindings {
		if value := values[b.env]; value != "" {
			r.v.SetDefault(b.key, value)
		}
	}
	return nil
}

// Maintainer returns the image maintainer.
func (r *Reader) Maintainer() string { return r.v.GetString(keyMaintainer) }

// DockerVersion returns the image version.
func (r *Reader) DockerVersion() string { return r.v.GetString(keyDockerVersion) }

// BuildDate returns the image build date.
func (r *Reader) BuildDate() string { return r.v.GetString(keyBuildDate) }

// RepositoryURL returns the source repository URL.
func (r *Reader) RepositoryURL() string { return r.v.GetString(keyRepositoryURL) }

// BugReport returns where bugs should be reported.
func (r *Reader) BugReport() string { return r.v.GetString(keyBugReport) }

// Environments returns all fields as one Info. The lookups themselves cannot
// fail; the Result form lets callers chain it with other Result-returning
// steps.
func (r *Reader) Environments() *result.Result[Info] {
	if r == nil || r.v == nil {
		return result.Fail[Info](result.NewError("environment reader is not initialized"))
	}
	return result.Ok(Info{
		Maintainer:    r.Maintainer(),
		DockerVersion: r.DockerVersion(),
		BuildDate:     r.BuildDate(),
		RepositoryURL: r.RepositoryURL(),
		BugReport:     r.BugReport(),
	})
}

var (
	defaultOnce   sync.Once
	defaultReader *Reader
)

// Default returns a process-wide Reader bound to the environment, created on
// first use.
func Default() *Reader {
	defaultOnce.Do(func() {
		defaultReader = NewReader()
	})
	return defaultReader
}
