package project

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/space-cli/space/internal/config"
	"github.com/space-cli/space/internal/model"
)

// Name resolves the project name: the configured name when set, otherwise
// the base name of the work directory.
func Name(cfg *config.Config, workDir string) string {
	if cfg != nil && cfg.Project.Name != "" {
		return cfg.Project.Name
	}
	return filepath.Base(workDir)
}

// Builder assembles a model.ProjectContext from configuration.
type Builder struct {
	cfg     *config.Config
	workDir string
}

// NewBuilder creates a Builder for the given configuration and work
// directory. workDir should be absolute; the builder does not resolve it.
func NewBuilder(cfg *config.Config, workDir string) *Builder {
	return &Builder{
		cfg:     cfg,
		workDir: workDir,
	}
}

// Build assembles the project context: identity fields plus one ServiceInfo
// per configured service with its hashed DNS name and rendered URL.
func (b *Builder) Build() *model.ProjectContext {
	ctx := &model.ProjectContext{
		WorkDir:     b.workDir,
		ProjectName: Name(b.cfg, b.workDir),
		Hash:        Hash(b.workDir),
		BaseDomain:  b.cfg.Network.BaseDomain,
		Services:    make(map[string]model.ServiceInfo, len(b.cfg.Services)),
	}

	hashed := b.cfg.Network.DNSHashingEnabled()
	for name, svc := range b.cfg.Services {
		dnsName := DNSName(name, b.workDir, ctx.BaseDomain, hashed)
		ctx.Services[name] = model.ServiceInfo{
			Name:         name,
			DNSName:      dnsName,
			InternalPort: svc.Port,
			URL:          renderURL(svc.URLTemplate, dnsName, svc.Port, name, ctx.ProjectName),
		}
	}

	return ctx
}

// renderURL expands the URL template for one service.
// Supported variables: {host}, {port}, {service}, {project}.
func renderURL(template, host string, port int, service, projectName string) string {
	if template == "" {
		template = config.DefaultURLTemplate
	}

	r := strings.NewReplacer(
		"{host}", host,
		"{port}", strconv.Itoa(port),
		"{service}", service,
		"{project}", projectName,
	)
	return r.Replace(template)
}
