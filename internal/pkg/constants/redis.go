package constants

// Redis key patterns for the dispatch coordinator
const (
	// Geo sets of available mechanic organizations, one per issue type plus
	// a combined set used by the widened fallback search
	KeyMechanicGeo    = "mechanics:geo:%s"
	KeyMechanicGeoAll = "mechanics:geo:all"

	// Set of mechanic IDs currently accepting requests
	KeyAvailableMechanics = "mechanics:available"

	// Hash holding a mechanic's profile fields (name, rating, lat, lng)
	KeyMechanicProfile = "mechanic:%s"

	// Active request pointers, keyed by actor
	KeyActiveRequestRequester = "requester:%s:active_request"
	KeyActiveRequestMechanic  = "mechanic:%s:active_request"
)

// KnownIssueTypes enumerates the per-issue geo sets a mechanic may be
// registered in, used when tearing a mechanic down from the pool
var KnownIssueTypes = []string{
	"battery",
	"engine",
	"tyre",
	"fuel",
	"brakes",
	"accident",
	"towing",
	"other",
}

// Redis hash field names
const (
	FieldName      = "name"
	FieldRating    = "rating"
	FieldLatitude  = "latitude"
	FieldLongitude = "longitude"
	FieldGeohash   = "geohash"
	FieldTimestamp = "timestamp"
)

// GeohashPrecision is the cell size stored in mechanic profiles, about
// 5m x 5m at precision 9
const GeohashPrecision = 9
