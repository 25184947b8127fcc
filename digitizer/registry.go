// Package digitizer provides the digitizer message schema registry.
package digitizer

import (
	"embed"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("digitizer")

//go:embed schemas/*.fbs
var schemasFS embed.FS

// SchemaInfo describes one schema file.
type SchemaInfo struct {
	Name        string
	Description string
	// Identifier is the 4-byte file identifier, or empty for schemas
	// that are only included by others and never form a root buffer.
	Identifier string
	Kind       Kind
	Size       int
}

// SchemaRegistry manages the digitizer schema files and maps format
// identifiers back to them. It is safe for concurrent use.
type SchemaRegistry struct {
	schemas map[string][]byte     // schema name -> source
	info    map[string]SchemaInfo // schema name -> metadata
	byIdent map[string]string     // file identifier -> schema name
	mu      sync.RWMutex
}

// NewSchemaRegistry creates a registry populated from the embedded
// schema sources.
func NewSchemaRegistry() (*SchemaRegistry, error) {
	r := &SchemaRegistry{
		schemas: make(map[string][]byte),
		info:    make(map[string]SchemaInfo),
		byIdent: make(map[string]string),
	}
	if err := r.loadEmbedded(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *SchemaRegistry) loadEmbedded() error {
	entries, err := schemasFS.ReadDir("schemas")
	if err != nil {
		return fmt.Errorf("failed to read schemas directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".fbs") {
			continue
		}

		content, err := schemasFS.ReadFile(filepath.Join("schemas", entry.Name()))
		if err != nil {
			log.Warnf("Failed to read schema %s: %v", entry.Name(), err)
			continue
		}

		ident := extractIdentifier(content)
		r.schemas[entry.Name()] = content
		r.info[entry.Name()] = SchemaInfo{
			Name:        entry.Name(),
			Description: extractDescription(content),
			Identifier:  ident,
			Kind:        kindForIdentifier(ident),
			Size:        len(content),
		}
		if ident != "" {
			r.byIdent[ident] = entry.Name()
		}
	}

	log.Debugf("Loaded %d embedded schemas", len(r.schemas))
	return nil
}

// Get returns the source of a schema.
func (r *SchemaRegistry) Get(name string) ([]byte, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	content, ok := r.schemas[name]
	return content, ok
}

// Has checks if a schema exists.
func (r *SchemaRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.schemas[name]
	return ok
}

// List returns all schema names in sorted order.
func (r *SchemaRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Info returns information about all schemas.
func (r *SchemaRegistry) Info() []SchemaInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	info := make([]SchemaInfo, 0, len(r.info))
	for _, si := range r.info {
		info = append(info, si)
	}
	sort.Slice(info, func(i, j int) bool { return info[i].Name < info[j].Name })
	return info
}

// Lookup resolves a 4-byte file identifier to its schema.
func (r *SchemaRegistry) Lookup(identifier string) (SchemaInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.byIdent[identifier]
	if !ok {
		return SchemaInfo{}, false
	}
	return r.info[name], true
}

// Describe peeks at a buffer's format identifier and returns the
// schema it claims to conform to. Unknown identifiers report false.
func (r *SchemaRegistry) Describe(buf []byte) (SchemaInfo, bool) {
	kind := Identify(buf)
	if kind == KindUnknown {
		return SchemaInfo{}, false
	}
	switch kind {
	case KindEventList:
		return r.Lookup(EventListIdentifier)
	case KindAnalogTrace:
		return r.Lookup(AnalogTraceIdentifier)
	}
	return SchemaInfo{}, false
}

func kindForIdentifier(identifier string) Kind {
	switch identifier {
	case EventListIdentifier:
		return KindEventList
	case AnalogTraceIdentifier:
		return KindAnalogTrace
	}
	return KindUnknown
}

// extractDescription extracts the schema description from FlatBuffer comments.
func extractDescription(content []byte) string {
	lines := strings.Split(string(content), "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "///") {
			return strings.TrimPrefix(line, "/// ")
		}
		if strings.HasPrefix(line, "//") {
			return strings.TrimPrefix(line, "// ")
		}
	}
	return ""
}

// extractIdentifier extracts the file_identifier declaration, if any.
func extractIdentifier(content []byte) string {
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "file_identifier") {
			continue
		}
		start := strings.Index(line, `"`)
		end := strings.LastIndex(line, `"`)
		if start >= 0 && end > start {
			return line[start+1 : end]
		}
	}
	return ""
}
