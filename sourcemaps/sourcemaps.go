package sourcemaps

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/neelance/sourcemap"
)

// Metadata identifies the compiled script a map belongs to and where the
// map itself was referenced from.
type Metadata struct {
	CompiledPath string
	SourceMapURL string
}

// Map is a queryable view over a decoded mapping table.
//
// Queries follow the consumer semantics the debugger is written against:
// OriginalPositionFor never crosses generated lines, GeneratedPositionFor
// honors the requested bias within a single source, and
// AllGeneratedPositionsFor returns the full run of generated positions that
// collapse onto one original position. A Map is safe for concurrent queries
// once built.
type Map struct {
	table    *sourcemap.Map
	meta     Metadata
	resolved map[string]string // raw source name -> name with sourceRoot applied

	byGenerated []*sourcemap.Mapping
	byOriginal  map[string][]*sourcemap.Mapping
	content     map[string]string
	sources     []string
}

// New indexes a mapping table for querying. The table is adopted and must
// not be modified by the caller afterwards.
func New(table *sourcemap.Map, meta Metadata) *Map {
	m := &Map{
		table:      table,
		meta:       meta,
		resolved:   make(map[string]string),
		byOriginal: make(map[string][]*sourcemap.Mapping),
		content:    make(map[string]string),
	}
	for _, raw := range table.Sources {
		m.resolveName(raw)
	}
	for _, mp := range table.DecodedMappings() {
		m.byGenerated = append(m.byGenerated, mp)
		if mp.OriginalFile == "" {
			continue
		}
		name := m.resolveName(mp.OriginalFile)
		m.byOriginal[name] = append(m.byOriginal[name], mp)
	}
	sort.SliceStable(m.byGenerated, func(i, j int) bool {
		a, b := m.byGenerated[i], m.byGenerated[j]
		return a.GeneratedLine < b.GeneratedLine ||
			(a.GeneratedLine == b.GeneratedLine && a.GeneratedColumn < b.GeneratedColumn)
	})
	for _, list := range m.byOriginal {
		sort.SliceStable(list, func(i, j int) bool {
			a, b := list[i], list[j]
			if a.OriginalLine != b.OriginalLine {
				return a.OriginalLine < b.OriginalLine
			}
			if a.OriginalColumn != b.OriginalColumn {
				return a.OriginalColumn < b.OriginalColumn
			}
			if a.GeneratedLine != b.GeneratedLine {
				return a.GeneratedLine < b.GeneratedLine
			}
			return a.GeneratedColumn < b.GeneratedColumn
		})
	}
	return m
}

// resolveName applies the table's sourceRoot to a raw source name and
// records the source, first occurrence wins.
func (m *Map) resolveName(raw string) string {
	if name, ok := m.resolved[raw]; ok {
		return name
	}
	name := applySourceRoot(m.table.SourceRoot, raw)
	m.resolved[raw] = name
	m.sources = append(m.sources, name)
	return name
}

// applySourceRoot prefixes relative source names with the map's sourceRoot.
// Absolute paths, URLs and data: URIs are kept as is.
func applySourceRoot(root, src string) string {
	if root == "" || src == "" {
		return src
	}
	if strings.HasPrefix(src, "/") || strings.HasPrefix(src, "data:") || strings.Contains(src, "://") {
		return src
	}
	return strings.TrimSuffix(root, "/") + "/" + src
}

// OriginalPositionFor returns the original location a generated position
// maps back to. The lookup is a greatest lower bound restricted to the same
// generated line; landing on a mapping with no original side reports not
// found.
func (m *Map) OriginalPositionFor(p Position) (Location, bool) {
	i := sort.Search(len(m.byGenerated), func(i int) bool {
		mp := m.byGenerated[i]
		return mp.GeneratedLine > p.Line ||
			(mp.GeneratedLine == p.Line && mp.GeneratedColumn > p.Column)
	}) - 1
	if i < 0 {
		return Location{}, false
	}
	mp := m.byGenerated[i]
	if mp.GeneratedLine != p.Line || mp.OriginalFile == "" {
		return Location{}, false
	}
	return Location{
		Source:   m.resolved[mp.OriginalFile],
		Position: Position{Line: mp.OriginalLine, Column: mp.OriginalColumn},
	}, true
}

// GeneratedPositionFor returns the generated position for an original
// location in the given source. Only that source's mappings are searched;
// an unknown source reports not found.
func (m *Map) GeneratedPositionFor(source string, p Position, bias Bias) (Position, bool) {
	list := m.byOriginal[source]
	if len(list) == 0 {
		return Position{}, false
	}
	var mp *sourcemap.Mapping
	switch bias {
	case LeastUpperBound:
		i := sort.Search(len(list), func(i int) bool {
			e := list[i]
			return e.OriginalLine > p.Line ||
				(e.OriginalLine == p.Line && e.OriginalColumn >= p.Column)
		})
		if i == len(list) {
			return Position{}, false
		}
		mp = list[i]
	default:
		i := sort.Search(len(list), func(i int) bool {
			e := list[i]
			return e.OriginalLine > p.Line ||
				(e.OriginalLine == p.Line && e.OriginalColumn > p.Column)
		}) - 1
		if i < 0 {
			return Position{}, false
		}
		mp = list[i]
	}
	return Position{Line: mp.GeneratedLine, Column: mp.GeneratedColumn}, true
}

// AllGeneratedPositionsFor returns every generated position that collapses
// onto the requested original location. The column resolves to the first
// mapped column at or after the requested one on the same original line; a
// line with no mappings at or after the column yields nothing.
func (m *Map) AllGeneratedPositionsFor(source string, p Position) []Position {
	list := m.byOriginal[source]
	i := sort.Search(len(list), func(i int) bool {
		e := list[i]
		return e.OriginalLine > p.Line ||
			(e.OriginalLine == p.Line && e.OriginalColumn >= p.Column)
	})
	if i == len(list) || list[i].OriginalLine != p.Line {
		return nil
	}
	col := list[i].OriginalColumn
	var out []Position
	for ; i < len(list) && list[i].OriginalLine == p.Line && list[i].OriginalColumn == col; i++ {
		out = append(out, Position{Line: list[i].GeneratedLine, Column: list[i].GeneratedColumn})
	}
	return out
}

// SourceContent returns the embedded content for a source, if the map
// carries any.
func (m *Map) SourceContent(source string) (string, bool) {
	c, ok := m.content[source]
	return c, ok
}

// SetSourceContent embeds content for a source. It is meant for map
// construction and must not be called once the map is shared.
func (m *Map) SetSourceContent(source, content string) {
	m.content[source] = content
}

// Sources lists the original source names in table order.
func (m *Map) Sources() []string {
	out := make([]string, len(m.sources))
	copy(out, m.sources)
	return out
}

// Metadata reports the compiled script identity the map was built or
// loaded for.
func (m *Map) Metadata() Metadata { return m.meta }

// Len reports the number of mappings in the table.
func (m *Map) Len() int { return len(m.byGenerated) }

// envelope carries the version 3 JSON fields the mapping table type does
// not, sourcesContent in particular. Entries may be null for sources
// without embedded content.
type envelope struct {
	Version        int       `json:"version"`
	File           string    `json:"file,omitempty"`
	SourceRoot     string    `json:"sourceRoot,omitempty"`
	Sources        []string  `json:"sources,omitempty"`
	SourcesContent []*string `json:"sourcesContent,omitempty"`
	Names          []string  `json:"names,omitempty"`
	Mappings       string    `json:"mappings"`
}

// Decode parses a version 3 source map.
func Decode(data []byte, meta Metadata) (*Map, error) {
	table, err := sourcemap.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding source map %q: %w", meta.SourceMapURL, err)
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding source map %q: %w", meta.SourceMapURL, err)
	}
	if env.Version != 3 {
		return nil, fmt.Errorf("source map %q has unsupported version %d", meta.SourceMapURL, env.Version)
	}
	m := New(table, meta)
	for i, c := range env.SourcesContent {
		if c == nil || i >= len(table.Sources) {
			continue
		}
		m.content[m.resolved[table.Sources[i]]] = *c
	}
	return m, nil
}

// Encode writes the map as version 3 JSON, including sourcesContent for
// every source that has embedded content.
func (m *Map) Encode(w io.Writer) error {
	m.table.EncodeMappings()
	env := envelope{
		Version:    3,
		File:       m.table.File,
		SourceRoot: m.table.SourceRoot,
		Sources:    m.table.Sources,
		Names:      m.table.Names,
		Mappings:   m.table.Mappings,
	}
	if len(m.content) > 0 {
		env.SourcesContent = make([]*string, len(env.Sources))
		for i, raw := range env.Sources {
			if c, ok := m.content[m.resolved[raw]]; ok {
				c := c
				env.SourcesContent[i] = &c
			}
		}
	}
	return json.NewEncoder(w).Encode(&env)
}
