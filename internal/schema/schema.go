// Package schema fixes the shape of the delivery-order dataset: the mapping
// from raw CSV headers to canonical field names, the canonical output column
// order, per-field domain constraints, and the human-readable field
// dictionary emitted alongside the cleaned table.
//
// Everything here is a static lookup structure. The pipeline has exactly one
// input schema (the 20-column raw export) and one output schema (the 25
// canonical columns including derived fields), so there is nothing to infer
// at runtime.
package schema

// RenameMap maps raw source column names to canonical names. Headers not
// present in the map pass through unchanged. A raw column that is absent from
// the input simply yields an absent field; the range gate catches the cases
// where that matters.
var RenameMap = map[string]string{
	"ID":                         "order_id",
	"Delivery_person_ID":         "rider_id",
	"Delivery_person_Age":        "rider_age",
	"Delivery_person_Ratings":    "rider_rating",
	"Restaurant_latitude":        "restaurant_lat",
	"Restaurant_longitude":       "restaurant_lng",
	"Delivery_location_latitude": "delivery_lat",
	"Delivery_location_longitude": "delivery_lng",
	"Order_Date":                 "order_date",
	"Time_Orderd":                "order_time",
	"Time_Order_picked":          "pickup_time",
	"Weatherconditions":          "weather",
	"Road_traffic_density":       "traffic_density",
	"Vehicle_condition":          "vehicle_condition",
	"Type_of_order":              "order_type",
	"Type_of_vehicle":            "vehicle_type",
	"multiple_deliveries":        "multi_delivery",
	"City":                       "city_type",
	"Time_taken(min)":            "delivery_time",
	"Festival":                   "is_festival",
}

// Columns is the canonical output column order: the renamed source columns in
// their original order, followed by the derived columns.
var Columns = []string{
	"order_id",
	"rider_id",
	"rider_age",
	"rider_rating",
	"restaurant_lat",
	"restaurant_lng",
	"delivery_lat",
	"delivery_lng",
	"order_date",
	"order_time",
	"pickup_time",
	"weather",
	"traffic_density",
	"vehicle_condition",
	"order_type",
	"vehicle_type",
	"multi_delivery",
	"city_type",
	"delivery_time",
	"is_festival",
	"order_hour",
	"pickup_hour",
	"distance_km",
	"efficiency_min_per_km",
	"time_period",
}

// Field describes one canonical field for validation and DDL generation.
type Field struct {
	Name string
	// Kind is a logical type: "string", "int", "float", "date".
	Kind string
	// Required marks fields whose absence disqualifies the record at the
	// range gate.
	Required bool
	// Min/Max bound the value domain when HasRange is set.
	HasRange bool
	Min      float64
	Max      float64
}

// Contract groups the fields that the range gate enforces. Only these three
// are range-checked; every other field is cleaned leniently.
type Contract struct {
	Fields []Field
}

// GateContract returns the single data-quality gate of the pipeline:
// delivery_time, rider_age, and rider_rating must be present and in range.
func GateContract() Contract {
	return Contract{Fields: []Field{
		{Name: "delivery_time", Kind: "int", Required: true, HasRange: true, Min: 5, Max: 120},
		{Name: "rider_age", Kind: "float", Required: true, HasRange: true, Min: 18, Max: 65},
		{Name: "rider_rating", Kind: "float", Required: true, HasRange: true, Min: 1, Max: 5},
	}}
}

// Dictionary maps each canonical column to its description, in Columns order.
// It backs the optional data-dictionary side file.
var Dictionary = map[string]string{
	"order_id":              "Unique order identifier",
	"rider_id":              "Delivery person identifier",
	"rider_age":             "Delivery person age",
	"rider_rating":          "Delivery person rating (1-5)",
	"restaurant_lat":        "Restaurant latitude",
	"restaurant_lng":        "Restaurant longitude",
	"delivery_lat":          "Delivery location latitude",
	"delivery_lng":          "Delivery location longitude",
	"order_date":            "Order date (YYYY-MM-DD)",
	"order_time":            "Order time (HH:MM:SS)",
	"pickup_time":           "Pickup time (HH:MM:SS)",
	"weather":               "Weather condition (Sunny/Stormy/Cloudy/Foggy/Sandstorm/Windy)",
	"traffic_density":       "Traffic density (Low/Medium/High/Heavy)",
	"vehicle_condition":     "Vehicle condition score",
	"order_type":            "Type of order (Meal/Snack/Drinks/Buffet)",
	"vehicle_type":          "Vehicle type (Motorcycle/Scooter/Electric_Scooter/Bicycle)",
	"multi_delivery":        "Concurrent deliveries count",
	"city_type":             "City type (Urban/Metropolitan/Semi-Urban)",
	"delivery_time":         "Delivery duration in minutes",
	"is_festival":           "Festival period flag (0/1)",
	"order_hour":            "Hour of order (0-23)",
	"pickup_hour":           "Hour of pickup (0-23)",
	"distance_km":           "Delivery distance in kilometers",
	"efficiency_min_per_km": "Delivery efficiency (minutes per km)",
	"time_period":           "Time period (Morning/Lunch/Afternoon/Dinner/Late_Night)",
}
