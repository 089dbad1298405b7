package extract

import (
	"path"
	"regexp"
	"strings"

	"github.com/airowe/codebase-context-skill/internal/detect"
	"github.com/airowe/codebase-context-skill/internal/ir"
)

var (
	// app router handlers: export async function GET(...) / export const GET = ...
	nextHandlerRe = regexp.MustCompile(`^\s*export\s+(?:async\s+)?(?:function|const)\s+(GET|POST|PUT|PATCH|DELETE|HEAD|OPTIONS)\b`)

	// imperative registration: router.get('/users', ...) and friends
	expressRouteRe = regexp.MustCompile(`(?:router|app|server|api)\.(get|post|put|patch|delete|head|options|all|use)\s*\(\s*[` + "`" + `'"]([^` + `'"` + "`" + `]+)[` + "`" + `'"]`)

	// decorator routes: @app.get("/users"), @router.route("/users", methods=["POST"])
	pythonRouteRe   = regexp.MustCompile(`^\s*@(?:app|router|api|blueprint|bp)\.(get|post|put|patch|delete|route|websocket)\s*\(\s*['"]([^'"]+)['"]`)
	pythonMethodsRe = regexp.MustCompile(`methods\s*=\s*[\[(]\s*['"](\w+)['"]`)

	bracketParamRe = regexp.MustCompile(`\[\.{3}(\w+)\]|\[(\w+)\]`)
	routeGroupRe   = regexp.MustCompile(`^\(.*\)$`)
)

// EntryPoints discovers externally reachable request handlers per profile.
// Keys are "METHOD /path"; a path with no determinable verb records "*".
// Colliding keys keep the last discovery, which is an accepted precision
// loss of the heuristic approach.
func EntryPoints(root string, profile detect.Profile, files []string) map[string]ir.Location {
	out := make(map[string]ir.Location)
	switch profile {
	case detect.ProfileNextJS:
		nextEntryPoints(root, files, out)
	case detect.ProfileExpress, detect.ProfileNode:
		expressEntryPoints(root, files, out)
	case detect.ProfilePython:
		pythonEntryPoints(root, files, out)
	}
	return out
}

// nextEntryPoints implements the directory-convention strategy: the file's
// position in the routing tree encodes the URL, bracketed segments are
// parameters, and exported verb-named functions are the handlers.
func nextEntryPoints(root string, files []string, out map[string]ir.Location) {
	for _, file := range files {
		urlPath, ok := nextRoutePath(file)
		if !ok {
			continue
		}
		methods := map[string]int{}
		for i, line := range readLines(root, file) {
			if m := nextHandlerRe.FindStringSubmatch(line); m != nil {
				if _, dup := methods[m[1]]; !dup {
					methods[m[1]] = i + 1
				}
			}
		}
		if len(methods) == 0 {
			out["* "+urlPath] = ir.Location{File: file, Line: 1}
			continue
		}
		for method, line := range methods {
			out[method+" "+urlPath] = ir.Location{File: file, Line: line}
		}
	}
}

// nextRoutePath converts a routing file path into its URL. It strips the
// conventional prefixes (src, app, pages, api), drops route groups, and
// rewrites [id] to :id and [...slug] to :slug.
func nextRoutePath(file string) (string, bool) {
	base := path.Base(file)
	stem := strings.TrimSuffix(base, path.Ext(base))
	inPages := strings.Contains("/"+file, "/pages/")
	if stem != "route" && !inPages {
		return "", false
	}

	segments := strings.Split(path.Dir(file), "/")
	if stem != "route" && stem != "index" {
		segments = append(segments, stem)
	}

	var parts []string
	stripped := false
	for _, seg := range segments {
		switch {
		case !stripped && (seg == "src" || seg == "app" || seg == "pages"):
			continue
		case !stripped && seg == "api":
			stripped = true
			continue
		case seg == "." || routeGroupRe.MatchString(seg):
			continue
		}
		stripped = true
		parts = append(parts, rewriteParams(seg))
	}
	return "/" + strings.Join(parts, "/"), true
}

func rewriteParams(segment string) string {
	return bracketParamRe.ReplaceAllStringFunc(segment, func(m string) string {
		sub := bracketParamRe.FindStringSubmatch(m)
		if sub[1] != "" {
			return ":" + sub[1]
		}
		return ":" + sub[2]
	})
}

// expressEntryPoints implements the declarative-call strategy. Non-literal
// paths never match the pattern and are skipped.
func expressEntryPoints(root string, files []string, out map[string]ir.Location) {
	for _, file := range files {
		if !isNodeFile(file) {
			continue
		}
		for i, line := range readLines(root, file) {
			for _, m := range expressRouteRe.FindAllStringSubmatch(line, -1) {
				method, routePath := m[1], m[2]
				if !strings.HasPrefix(routePath, "/") {
					continue
				}
				key := strings.ToUpper(method)
				if method == "use" || method == "all" {
					key = "*"
				}
				out[key+" "+routePath] = ir.Location{File: file, Line: i + 1}
			}
		}
	}
}

// pythonEntryPoints implements the decorator strategy for FastAPI and
// Flask style routing.
func pythonEntryPoints(root string, files []string, out map[string]ir.Location) {
	for _, file := range files {
		if !hasExt(file, ".py") {
			continue
		}
		for i, line := range readLines(root, file) {
			m := pythonRouteRe.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			method, routePath := m[1], m[2]
			key := strings.ToUpper(method)
			if method == "route" || method == "websocket" {
				key = "*"
				if mm := pythonMethodsRe.FindStringSubmatch(line); mm != nil {
					key = strings.ToUpper(mm[1])
				}
			}
			out[key+" "+routePath] = ir.Location{File: file, Line: i + 1}
		}
	}
}
