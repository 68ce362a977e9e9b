package metadata

// WMO weather interpretation codes as returned by open-meteo, mapped to the
// provided display strings.
var weatherCodeLabels = map[int]string{
	0:  "Ciel dégagé",
	1:  "Plutôt ensoleillé",
	2:  "Partiellement nuageux",
	3:  "Nuageux",
	45: "Brume",
	48: "Brouillard givrant",
	51: "Bruine légère",
	53: "Bruine modérée",
	55: "Bruine dense",
	61: "Pluie légère",
	63: "Pluie modérée",
	65: "Pluie forte",
	71: "Neige légère",
	73: "Neige modérée",
	75: "Neige forte",
	80: "Averses légères",
	81: "Averses modérées",
	82: "Averses intenses",
	95: "Orage",
}

const unknownConditions = "Conditions inconnues"

// LabelForWeatherCode maps a WMO code to its display label.
func LabelForWeatherCode(code *int) string {
	if code == nil {
		return unknownConditions
	}
	if label, ok := weatherCodeLabels[*code]; ok {
		return label
	}
	return unknownConditions
}
