package reference

import (
	"strings"
	"unicode"
)

// countryISO3 maps normalized country spellings onto ISO-3166 alpha-3 codes.
// Keys are stored pre-normalized (upper-case, punctuation stripped).
var countryISO3 = buildCountryISO3()

func buildCountryISO3() map[string]string {
	base := map[string]string{
		"UNITED STATES": "USA", "US": "USA", "U.S.": "USA", "USA": "USA",
		"UNITED STATES OF AMERICA": "USA", "AMERICA": "USA",
		"SINGAPORE": "SGP", "SG": "SGP",
		"INDONESIA": "IDN", "ID": "IDN",
		"UNITED KINGDOM": "GBR", "UK": "GBR", "U.K.": "GBR", "BRITAIN": "GBR", "GREAT BRITAIN": "GBR",
		"JAPAN": "JPN", "JP": "JPN",
		"CHINA": "CHN", "CN": "CHN", "PEOPLE'S REPUBLIC OF CHINA": "CHN", "PEOPLES REPUBLIC OF CHINA": "CHN", "PRC": "CHN",
		"HONG KONG": "HKG", "HK": "HKG",
		"CANADA": "CAN", "CA": "CAN",
		"AUSTRALIA": "AUS", "AU": "AUS",
		"INDIA": "IND", "IN": "IND",
		"GERMANY": "DEU", "DE": "DEU", "FEDERAL REPUBLIC OF GERMANY": "DEU",
		"FRANCE": "FRA", "FR": "FRA",
		"SPAIN": "ESP", "ES": "ESP",
		"ITALY": "ITA", "IT": "ITA",
		"NETHERLANDS": "NLD", "HOLLAND": "NLD",
		"SWITZERLAND": "CHE",
		"SWEDEN":      "SWE",
		"DENMARK":     "DNK",
		"NORWAY":      "NOR",
		"FINLAND":     "FIN",
		"BELGIUM":     "BEL",
		"IRELAND":     "IRL",
		"AUSTRIA":     "AUT",
		"PORTUGAL":    "PRT",
		"GREECE":      "GRC",
		"POLAND":      "POL",
		"CZECH REPUBLIC": "CZE", "CZECHIA": "CZE",
		"HUNGARY": "HUN",
		"TURKEY":  "TUR", "TÜRKIYE": "TUR",
		"RUSSIAN FEDERATION": "RUS", "RUSSIA": "RUS",
		"BRAZIL":       "BRA",
		"ARGENTINA":    "ARG",
		"MEXICO":       "MEX",
		"CHILE":        "CHL",
		"COLOMBIA":     "COL",
		"PERU":         "PER",
		"VENEZUELA":    "VEN",
		"SOUTH AFRICA": "ZAF",
		"EGYPT":        "EGY",
		"SAUDI ARABIA": "SAU",
		"UNITED ARAB EMIRATES": "ARE", "UAE": "ARE",
		"QATAR":  "QAT",
		"KUWAIT": "KWT",
		"ISRAEL": "ISR",
		"KOREA, REPUBLIC OF": "KOR", "REPUBLIC OF KOREA": "KOR", "SOUTH KOREA": "KOR", "KOREA": "KOR",
		"KOREA, DEMOCRATIC PEOPLE'S REPUBLIC OF": "PRK", "NORTH KOREA": "PRK",
		"TAIWAN":   "TWN",
		"VIET NAM": "VNM", "VIETNAM": "VNM",
		"THAILAND":    "THA",
		"MALAYSIA":    "MYS",
		"PHILIPPINES": "PHL",
		"NEW ZEALAND": "NZL",
	}
	out := make(map[string]string, len(base))
	for k, v := range base {
		out[normCountry(k)] = v
	}
	return out
}

func normCountry(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TryISO3 resolves a free-form country spelling to an ISO-3166 alpha-3 code.
//
// The input is normalized (case folded, punctuation stripped) and then
// resolved in order: already-ISO3 strings pass through, exact synonym match,
// then prefix/contains heuristics against the known synonyms. The second
// return reports whether a code was found.
func TryISO3(country string) (string, bool) {
	if strings.TrimSpace(country) == "" {
		return "", false
	}
	cNorm := normCountry(country)

	if len(cNorm) == 3 && isAlpha(cNorm) {
		return cNorm, true
	}
	if iso, ok := countryISO3[cNorm]; ok {
		return iso, true
	}
	for kNorm, iso := range countryISO3 {
		if strings.HasPrefix(cNorm, kNorm) || strings.HasPrefix(kNorm, cNorm) || strings.Contains(cNorm, kNorm) {
			return iso, true
		}
	}
	return "", false
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
