package grammar

import "strings"

// RemoveDotSegments removes "." and ".." segments from path
// following RFC 3986 Section 5.2.4. A ".." that would climb above the root is dropped.
func RemoveDotSegments(path string) string {
	if !strings.Contains(path, ".") {
		return path
	}

	in := path
	out := make([]string, 0, strings.Count(path, "/")+1)
	for in != "" {
		switch {
		// A: drop leading "../" or "./"
		case strings.HasPrefix(in, "../"):
			in = in[3:]
		case strings.HasPrefix(in, "./"):
			in = in[2:]
		// B: "/./" or trailing "/." becomes "/"
		case strings.HasPrefix(in, "/./"):
			in = in[2:]
		case in == "/.":
			in = "/"
		// C: "/../" or trailing "/.." becomes "/" and pops the last output segment
		case strings.HasPrefix(in, "/../"):
			in = in[3:]
			out = popSegment(out)
		case in == "/..":
			in = "/"
			out = popSegment(out)
		// D: lone "." or ".."
		case in == "." || in == "..":
			in = ""
		// E: move the first segment, with its leading "/", to the output
		default:
			end := strings.IndexByte(in[1:], '/')
			if end < 0 {
				end = len(in)
			} else {
				end++
			}
			out = append(out, in[:end])
			in = in[end:]
		}
	}
	return strings.Join(out, "")
}

func popSegment(out []string) []string {
	if len(out) == 0 {
		return out
	}
	return out[:len(out)-1]
}

// MergePaths merges a relative-path reference with the base path
// following RFC 3986 Section 5.2.3.
func MergePaths(base string, hasBaseAuthority bool, ref string) string {
	if hasBaseAuthority && base == "" {
		return "/" + ref
	}
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		return base[:i+1] + ref
	}
	return ref
}

// FirstSegment returns the path text up to the first "/".
func FirstSegment(path string) string {
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return path
}
