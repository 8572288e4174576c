// Package dataset loads and validates problem instances from JSON.
//
// One instance file carries the whole problem:
//
//	{
//	  "locations": {
//	    "depots":           [{"id","name","country"}],
//	    "border_crossings": [{"id","name","countries":["China","Vietnam"]}],
//	    "deliveries":       [{"id","name","country"}]
//	  },
//	  "countries": {
//	    "Vietnam": {
//	      "time_windows": [{"start_time","end_time","delay_factor"}],
//	      "routes": {"NNG-HAN": {"distance","base_time","road_type"}}
//	    }
//	  },
//	  "fleet":     [{"id","type","max_cbm"|"dimensions","max_weight","base","fuel_efficiency"}],
//	  "shipments": [{"id","order_id","total_cbm","weight","origin","delivery":{"location_id"},"price"}]
//	}
//
// Routes are named "FROM-TO" and are undirected; a country's time windows
// become the delay factors of every route in that country. Vehicle volume
// may be given directly (max_cbm) or as cargo-box dimensions, in which
// case length·width·height is used.
//
// Parse performs full structural validation before anything reaches the
// optimizer: unique ids, resolvable location references, positive
// capacities, weights and volumes. Malformed routes fail the load; the
// engine never sees a partial network.
//
// The package also hosts the independent feasibility validator (Check):
// a second opinion on a finished solution that re-derives capacity usage
// and shipment coverage from scratch, reporting every violated
// constraint instead of stopping at the first.
package dataset
