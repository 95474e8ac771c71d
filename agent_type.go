package walknet

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/paulmach/osm"
)

type AgentType uint16

const (
	AGENT_WALK      = AgentType(iota + 1)
	AGENT_UNDEFINED = AgentType(0)
)

func (iotaIdx AgentType) String() string {
	return [...]string{"undefined", "walk"}[iotaIdx]
}

// accessRule excludes way when its tag value matches pattern. Absent tag never matches.
// Patterns are unanchored regular expressions, same as Overpass `!~` filters
type accessRule struct {
	accessType AccessType
	pattern    string
	re         *regexp.Regexp
}

func newAccessRule(accessType AccessType, pattern string) accessRule {
	return accessRule{
		accessType: accessType,
		pattern:    pattern,
		re:         regexp.MustCompile(pattern),
	}
}

var (
	agentsAccessExcludeRules = map[AgentType][]accessRule{
		AGENT_WALK: {
			newAccessRule(ACCESS_AREA, "yes"),
			newAccessRule(ACCESS_HIGHWAY, "abandoned|bus_guideway|construction|cycleway|motor|no|planned|platform|proposed|raceway|razed"),
			newAccessRule(ACCESS_FOOT, "no"),
			newAccessRule(ACCESS_SERVICE, "private"),
			newAccessRule(ACCESS_OSM_ACCESS, "private"),
		},
	}
)

// isAllowedFor reports whether way with given tags could be traversed by agent.
// Way needs `highway` tag and must pass every exclude rule
func isAllowedFor(agentType AgentType, tags osm.Tags) bool {
	rules, ok := agentsAccessExcludeRules[agentType]
	if !ok {
		return false
	}
	if _, ok := findTag(tags, ACCESS_HIGHWAY.String()); !ok {
		return false
	}
	for _, rule := range rules {
		value, ok := findTag(tags, rule.accessType.String())
		if ok && rule.re.MatchString(value) {
			return false
		}
	}
	return true
}

// overpassWayFilter renders agent rules as Overpass QL tag filters
func overpassWayFilter(agentType AgentType) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `["%s"]`, ACCESS_HIGHWAY)
	for _, rule := range agentsAccessExcludeRules[agentType] {
		fmt.Fprintf(&sb, `["%s"!~"%s"]`, rule.accessType, rule.pattern)
	}
	return sb.String()
}
