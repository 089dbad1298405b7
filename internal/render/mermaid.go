package render

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/airowe/codebase-context-skill/internal/graph"
)

var mermaidIDRe = regexp.MustCompile(`[^a-z0-9_]`)

// Mermaid renders the dependency graph as a flowchart, clustered into
// subgraphs by top-level then second-level directory.
func Mermaid(g *graph.Graph) string {
	var sb strings.Builder
	sb.WriteString("flowchart TD\n")

	for _, cluster := range clusters(g.Nodes()) {
		if cluster.Dir == "." {
			for _, file := range cluster.Files {
				sb.WriteString(fmt.Sprintf("    %s[%q]\n", sanitizeID(file), file))
			}
			continue
		}
		sb.WriteString(fmt.Sprintf("    subgraph %s[%q]\n", sanitizeID("cluster_"+cluster.Dir), cluster.Dir))
		for _, sub := range clusters(cluster.Files) {
			if sub.Dir == "." {
				for _, file := range sub.Files {
					full := cluster.Dir + "/" + file
					sb.WriteString(fmt.Sprintf("        %s[%q]\n", sanitizeID(full), file))
				}
				continue
			}
			sb.WriteString(fmt.Sprintf("        subgraph %s[%q]\n", sanitizeID("cluster_"+cluster.Dir+"_"+sub.Dir), sub.Dir))
			for _, file := range sub.Files {
				full := cluster.Dir + "/" + sub.Dir + "/" + file
				sb.WriteString(fmt.Sprintf("            %s[%q]\n", sanitizeID(full), file))
			}
			sb.WriteString("        end\n")
		}
		sb.WriteString("    end\n")
	}

	for _, edge := range g.Edges() {
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", sanitizeID(edge.From), sanitizeID(edge.To)))
	}
	return sb.String()
}

type cluster struct {
	Dir   string
	Files []string // paths relative to Dir ("." for files at this level)
}

// clusters groups sorted paths by their first path segment, keeping the
// "." group (files at this level) last for readability.
func clusters(paths []string) []cluster {
	grouped := make(map[string][]string)
	for _, p := range paths {
		if i := strings.Index(p, "/"); i >= 0 {
			grouped[p[:i]] = append(grouped[p[:i]], p[i+1:])
		} else {
			grouped["."] = append(grouped["."], p)
		}
	}

	dirs := make([]string, 0, len(grouped))
	for dir := range grouped {
		if dir != "." {
			dirs = append(dirs, dir)
		}
	}
	sort.Strings(dirs)
	if _, ok := grouped["."]; ok {
		dirs = append(dirs, ".")
	}

	out := make([]cluster, 0, len(dirs))
	for _, dir := range dirs {
		out = append(out, cluster{Dir: dir, Files: grouped[dir]})
	}
	return out
}

func sanitizeID(v string) string {
	v = strings.TrimSpace(strings.ToLower(v))
	if v == "" {
		return "node"
	}
	v = mermaidIDRe.ReplaceAllString(strings.ReplaceAll(v, "-", "_"), "_")
	if v[0] >= '0' && v[0] <= '9' {
		v = "n_" + v
	}
	return v
}
