package vbp

import (
	"strconv"
	"strings"
)

// ModuleRef is one `Module=Name; Path` or `Class=Name; Path` repeated-key
// entry.
type ModuleRef struct {
	Name string
	Path string
}

// Reference is one `Reference=` or `Object=` repeated-key entry. Raw
// preserves the exact right-hand-side text unmodified; GUID/VersionMajor/
// VersionMinor/Path/Name are populated on a best-effort basis when Raw
// follows VB6's common `*\G{guid}#major.minor#flag#path#name` (type
// library Reference), `*\A{path}#name` (ActiveX exe Reference, no GUID
// segment), or `{guid}#major.minor#flag; file` (Object) shape. A Reference
// that follows none of these (rare, and not load-bearing for round-trip
// since Raw is always kept) leaves the typed fields zero.
type Reference struct {
	Raw          string
	GUID         string
	VersionMajor int32
	VersionMinor int32
	Path         string
	Name         string
}

func parseModuleRef(value string) ModuleRef {
	parts := strings.SplitN(value, ";", 2)
	if len(parts) != 2 {
		return ModuleRef{Name: strings.TrimSpace(value)}
	}
	return ModuleRef{Name: strings.TrimSpace(parts[0]), Path: strings.TrimSpace(parts[1])}
}

func parseReference(value string) Reference {
	ref := Reference{Raw: value}

	switch {
	case strings.HasPrefix(value, `*\G`):
		body := strings.TrimPrefix(value, `*\G`)
		segs := strings.Split(body, "#")
		if len(segs) > 0 {
			ref.GUID = strings.Trim(segs[0], "{}")
		}
		if len(segs) > 1 {
			if maj, min, ok := splitVersion(segs[1]); ok {
				ref.VersionMajor, ref.VersionMinor = maj, min
			}
		}
		if len(segs) > 3 {
			ref.Path = segs[3]
		}
		if len(segs) > 4 {
			ref.Name = segs[4]
		}

	case strings.HasPrefix(value, `*\A`):
		body := strings.TrimPrefix(value, `*\A`)
		segs := strings.SplitN(body, "#", 2)
		ref.Path = segs[0]
		if len(segs) > 1 {
			ref.Name = segs[1]
		}
	}

	return ref
}

func parseObjectRef(value string) Reference {
	ref := Reference{Raw: value}

	parts := strings.SplitN(value, ";", 2)
	if len(parts) > 1 {
		ref.Path = strings.TrimSpace(parts[1])
	}

	segs := strings.Split(strings.TrimSpace(parts[0]), "#")
	if len(segs) > 0 {
		ref.GUID = strings.Trim(segs[0], "{}")
	}
	if len(segs) > 1 {
		if maj, min, ok := splitVersion(segs[1]); ok {
			ref.VersionMajor, ref.VersionMinor = maj, min
		}
	}

	return ref
}

func splitVersion(s string) (major, minor int32, ok bool) {
	parts := strings.SplitN(s, ".", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	maj, errMaj := strconv.ParseInt(parts[0], 10, 32)
	min, errMin := strconv.ParseInt(parts[1], 10, 32)
	if errMaj != nil || errMin != nil {
		return 0, 0, false
	}
	return int32(maj), int32(min), true
}

func splitKeyValue(line string) (key, value string, ok bool) {
	idx := strings.IndexByte(line, '=')
	if idx < 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:idx])
	value = strings.TrimSpace(line[idx+1:])
	if key == "" {
		return "", "", false
	}
	return key, value, true
}

func unquote(v string) string {
	if len(v) >= 2 && strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) {
		return v[1 : len(v)-1]
	}
	return v
}
