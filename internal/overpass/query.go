package overpass

import "fmt"

// queryTemplate selects the administrative relations with the given
// admin_level inside the area whose ISO3166-2 tag matches the region
// code, with their bodies and the skeletons of their members.
const queryTemplate = `[out:json][timeout:300];
area["ISO3166-2"~"%s"]->.searchArea;
(
    rel["admin_level"="%s"](area.searchArea);
);
out body;
>;
out skel qt;`

// BuildQuery returns the Overpass QL query for the given region code
// and administrative level. Both values are inserted verbatim: we do
// not escape or validate them and the server reports malformed input.
func BuildQuery(regionCode, adminLevel string) string {
	return fmt.Sprintf(queryTemplate, regionCode, adminLevel)
}
