package dataset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fuzzroute/dataset"
	"github.com/katalvlaran/fuzzroute/network"
)

const instanceJSON = `{
  "locations": {
    "depots": [
      {"id": "NNG", "name": "Nanning", "country": "China"}
    ],
    "border_crossings": [
      {"id": "PXN", "name": "Pingxiang", "countries": ["China", "Vietnam"]}
    ],
    "deliveries": [
      {"id": "HAN", "name": "Hanoi", "country": "Vietnam"},
      {"id": "BKK", "name": "Bangkok", "country": "Thailand"}
    ]
  },
  "countries": {
    "Vietnam": {
      "time_windows": [
        {"start_time": "06:00", "end_time": "09:00", "delay_factor": 1.4},
        {"start_time": "17:00", "end_time": "20:00", "delay_factor": 1.5}
      ],
      "routes": {
        "NNG-PXN": {"distance": 180, "base_time": 150, "road_type": "highway"},
        "PXN-HAN": {"distance": 170, "base_time": 160, "road_type": "highway"}
      }
    },
    "Thailand": {
      "time_windows": [],
      "routes": {
        "HAN-BKK": {"distance": 1500, "base_time": 400, "road_type": "highway"}
      }
    }
  },
  "fleet": [
    {"id": "V1", "type": "standard", "max_cbm": 76, "max_weight": 24000, "base": "NNG", "fuel_efficiency": 0.3},
    {"id": "V2", "type": "standard", "dimensions": {"length": 12, "width": 2.4, "height": 2.6}, "max_weight": 24000, "base": "NNG", "fuel_efficiency": 0.3}
  ],
  "shipments": [
    {"id": "S1", "order_id": "O-1", "total_cbm": 20, "weight": 8000, "origin": "NNG", "delivery": {"location_id": "HAN"}, "price": 5000},
    {"id": "S2", "order_id": "O-2", "total_cbm": 30, "weight": 9000, "origin": "NNG", "delivery": {"location_id": "BKK"}, "price": 8000}
  ]
}`

func TestParse_FullInstance(t *testing.T) {
	inst, err := dataset.Parse([]byte(instanceJSON))
	require.NoError(t, err)

	require.Len(t, inst.Nodes, 4)
	require.Len(t, inst.Edges, 3)
	require.Len(t, inst.Vehicles, 2)
	require.Len(t, inst.Shipments, 2)

	// Border crossing takes the first listed country.
	var pxn network.Node
	for _, n := range inst.Nodes {
		if n.ID == "PXN" {
			pxn = n
		}
	}
	require.Equal(t, network.NodeBorder, pxn.Type)
	require.Equal(t, "China", pxn.Country)

	// Dimensions fall back to length·width·height.
	require.InDelta(t, 12*2.4*2.6, inst.Vehicles[1].MaxVolume, 1e-9)

	// Country time windows attach to that country's routes only.
	for _, e := range inst.Edges {
		if e.From == "HAN" && e.To == "BKK" {
			require.Empty(t, e.DelayFactors)
		}
		if e.From == "NNG" && e.To == "PXN" {
			require.Equal(t, []float64{1.4, 1.5}, e.DelayFactors)
		}
	}
}

func TestParse_EdgesAreSortedForStability(t *testing.T) {
	inst, err := dataset.Parse([]byte(instanceJSON))
	require.NoError(t, err)

	require.Equal(t, "HAN", inst.Edges[0].From)
	require.Equal(t, "NNG", inst.Edges[1].From)
	require.Equal(t, "PXN", inst.Edges[2].From)
}

func TestBuildNetwork_EndToEnd(t *testing.T) {
	inst, err := dataset.Parse([]byte(instanceJSON))
	require.NoError(t, err)

	net, err := inst.BuildNetwork()
	require.NoError(t, err)

	d, err := net.Distance("NNG", "HAN")
	require.NoError(t, err)
	require.Equal(t, 350.0, d) // NNG → PXN → HAN

	crossing, err := net.IsBorderCrossing("NNG", "PXN")
	require.NoError(t, err)
	require.False(t, crossing) // both endpoints on the Chinese side

	crossing, err = net.IsBorderCrossing("PXN", "HAN")
	require.NoError(t, err)
	require.True(t, crossing)
}

func TestLoad_FromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instance.json")
	require.NoError(t, os.WriteFile(path, []byte(instanceJSON), 0o644))

	inst, err := dataset.Load(path)
	require.NoError(t, err)
	require.Len(t, inst.Shipments, 2)

	_, err = dataset.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestParse_Rejections(t *testing.T) {
	cases := map[string]struct {
		mutate func(string) string
		want   error
	}{
		"garbage json": {
			mutate: func(s string) string { return s[:20] },
			want:   dataset.ErrBadInstance,
		},
		"duplicate location": {
			mutate: func(s string) string {
				return strings.Replace(s, `"id": "BKK"`, `"id": "HAN"`, 1)
			},
			want: dataset.ErrDuplicateID,
		},
		"route to nowhere": {
			mutate: func(s string) string {
				return strings.Replace(s, `"HAN-BKK"`, `"HAN-XXX"`, 1)
			},
			want: dataset.ErrUnknownLocation,
		},
		"malformed route name": {
			mutate: func(s string) string {
				return strings.Replace(s, `"HAN-BKK"`, `"HANBKK"`, 1)
			},
			want: dataset.ErrBadInstance,
		},
		"negative distance": {
			mutate: func(s string) string {
				return strings.Replace(s, `"distance": 1500`, `"distance": -1`, 1)
			},
			want: dataset.ErrBadInstance,
		},
		"duplicate vehicle": {
			mutate: func(s string) string {
				return strings.Replace(s, `"id": "V2"`, `"id": "V1"`, 1)
			},
			want: dataset.ErrDuplicateID,
		},
		"unknown shipment delivery": {
			mutate: func(s string) string {
				return strings.Replace(s, `{"location_id": "BKK"}`, `{"location_id": "XXX"}`, 1)
			},
			want: dataset.ErrUnknownLocation,
		},
		"zero weight shipment": {
			mutate: func(s string) string {
				return strings.Replace(s, `"weight": 9000`, `"weight": 0`, 1)
			},
			want: dataset.ErrBadInstance,
		},
		"zero delay factor": {
			mutate: func(s string) string {
				return strings.Replace(s, `"delay_factor": 1.4`, `"delay_factor": 0`, 1)
			},
			want: dataset.ErrBadInstance,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := dataset.Parse([]byte(tc.mutate(instanceJSON)))
			require.ErrorIs(t, err, tc.want)
		})
	}
}
