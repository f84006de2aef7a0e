package parser

import (
	"context"
	"fmt"
	"io"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"

	"github.com/meridian-routing/meridian/coordinate"
)

// GeoJSONSource loads an Extract from a GeoJSON FeatureCollection. Each
// LineString feature is one way: its coordinate sequence is the way's
// path, and Properties carries the tags a profile.Classify call needs
// (highway, oneway, name, ...). Each Point feature is one standalone
// node, carrying a "barrier" property when it marks a physical
// obstruction, or a "restriction" property when it marks a turn
// restriction's via node (with "from_way"/"to_way" properties giving the
// 1-based order the referenced LineString features appear in the file).
//
// A real OSM node id is shared between every way that passes through an
// intersection; a GeoJSON LineString has no such shared identifier, so
// this loader reconstructs it by deduplicating nodes on exact coordinate
// match. Fixture authors wanting two ways to share a node must therefore
// repeat its coordinate exactly.
type GeoJSONSource struct {
	r io.Reader
}

// NewGeoJSONSource wraps r, from which a GeoJSON FeatureCollection is
// read on Load.
func NewGeoJSONSource(r io.Reader) *GeoJSONSource {
	return &GeoJSONSource{r: r}
}

func (s *GeoJSONSource) Load(ctx context.Context) (Extract, error) {
	data, err := io.ReadAll(s.r)
	if err != nil {
		return Extract{}, fmt.Errorf("parser: reading fixture: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return Extract{}, fmt.Errorf("parser: decoding geojson: %w", err)
	}

	nodeIDs := make(map[orb.Point]int64, len(fc.Features))
	var nodes []RawNode

	nodeFor := func(pt orb.Point) int64 {
		if id, ok := nodeIDs[pt]; ok {
			return id
		}
		id := int64(len(nodeIDs) + 1)
		nodeIDs[pt] = id
		nodes = append(nodes, RawNode{ID: id, Coord: coordinate.FromDegrees(pt[0], pt[1])})

		return id
	}

	var ways []RawWay
	nextWayID := int64(1)

	for _, f := range fc.Features {
		if err := ctx.Err(); err != nil {
			return Extract{}, err
		}
		if f.Geometry == nil {
			continue
		}

		switch f.Geometry.Type {
		case geojson.GeometryLineString:
			ids := make([]int64, len(f.Geometry.LineString))
			for i, c := range f.Geometry.LineString {
				ids[i] = nodeFor(orb.Point{c[0], c[1]})
			}
			ways = append(ways, RawWay{ID: nextWayID, Nodes: ids, Tags: stringTags(f.Properties)})
			nextWayID++

		case geojson.GeometryPoint:
			pt := orb.Point{f.Geometry.Point[0], f.Geometry.Point[1]}
			id := nodeFor(pt)
			if barrier, ok := f.Properties["barrier"].(string); ok && barrier != "" {
				for i := range nodes {
					if nodes[i].ID == id {
						nodes[i].Barrier = barrier
					}
				}
			}

		default:
			return Extract{}, fmt.Errorf("%w: %s", ErrUnsupportedGeometry, f.Geometry.Type)
		}
	}

	restrictions, err := restrictionsFromFeatures(fc.Features, nodeFor)
	if err != nil {
		return Extract{}, err
	}

	return Extract{Nodes: nodes, Ways: ways, Restrictions: restrictions}, nil
}

func restrictionsFromFeatures(features []*geojson.Feature, nodeFor func(orb.Point) int64) ([]RawRestriction, error) {
	var restrictions []RawRestriction

	for _, f := range features {
		kind, ok := f.Properties["restriction"].(string)
		if !ok || kind == "" {
			continue
		}
		if f.Geometry == nil || f.Geometry.Type != geojson.GeometryPoint {
			return nil, fmt.Errorf("parser: restriction feature must carry a Point geometry at its via node")
		}

		via := nodeFor(orb.Point{f.Geometry.Point[0], f.Geometry.Point[1]})

		fromWay, ok := propInt(f.Properties, "from_way")
		if !ok {
			return nil, fmt.Errorf("parser: restriction feature missing numeric from_way property")
		}
		toWay, ok := propInt(f.Properties, "to_way")
		if !ok {
			return nil, fmt.Errorf("parser: restriction feature missing numeric to_way property")
		}

		restrictions = append(restrictions, RawRestriction{
			FromWay:  fromWay,
			ViaNodes: []int64{via},
			ToWay:    toWay,
			Kind:     kind,
		})
	}

	return restrictions, nil
}

func propInt(props map[string]interface{}, key string) (int64, bool) {
	v, ok := props[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}

func stringTags(props map[string]interface{}) map[string]string {
	tags := make(map[string]string, len(props))
	for k, v := range props {
		if s, ok := v.(string); ok {
			tags[k] = s
			continue
		}
		tags[k] = fmt.Sprint(v)
	}

	return tags
}
