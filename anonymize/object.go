package anonymize

// nestedDeniedKeys are removed at every depth of an object walk.
var nestedDeniedKeys = map[string]struct{}{
	"userId":        {},
	"userName":      {},
	"deviceId":      {},
	"serialNumber":  {},
	"user_id":       {},
	"device_serial": {},
	"patient_id":    {},
}

// personalDeniedKeys are additionally removed at the top level of a
// full-dataset scrub.
var personalDeniedKeys = map[string]struct{}{
	"firstName":    {},
	"lastName":     {},
	"name":         {},
	"email":        {},
	"phone":        {},
	"address":      {},
	"ssn":          {},
	"dob":          {},
	"dateOfBirth":  {},
	"id":           {},
	"patientId":    {},
	"personalInfo": {},
}

// ScrubObject walks an arbitrarily nested value and returns a copy with every
// denied key removed at every depth. The walk distinguishes three shapes:
// maps, arrays and leaves. Leaves, nil included, are returned unchanged, so
// the function is total over any JSON-decoded value.
func ScrubObject(v interface{}) interface{} {
	return scrub(v, nestedDeniedKeys)
}

// ScrubDataset is ScrubObject with the wider personal-information deny list
// applied at the top level, for sanitizing a full dataset document before it
// leaves the service.
func ScrubDataset(v interface{}) interface{} {
	m, ok := v.(map[string]interface{})
	if !ok {
		return ScrubObject(v)
	}

	out := make(map[string]interface{}, len(m))
	for k, inner := range m {
		if _, drop := nestedDeniedKeys[k]; drop {
			continue
		}
		if _, drop := personalDeniedKeys[k]; drop {
			continue
		}
		out[k] = scrub(inner, nestedDeniedKeys)
	}
	return out
}

func scrub(v interface{}, denied map[string]struct{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, inner := range val {
			if _, drop := denied[k]; drop {
				continue
			}
			out[k] = scrub(inner, denied)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, inner := range val {
			out[i] = scrub(inner, denied)
		}
		return out
	default:
		return v
	}
}
