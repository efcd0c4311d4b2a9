package n2yo

// Wire DTOs for the N2YO REST API. Field names follow the service's JSON
// payloads verbatim. Pointer fields distinguish an absent key from a present
// but empty value where the two must be handled differently.

type infoPayload struct {
	SatID             int    `json:"satid"`
	SatName           string `json:"satname"`
	TransactionsCount int    `json:"transactionscount"`
	Category          string `json:"category"`
	SatCount          int    `json:"satcount"`
	PassesCount       int    `json:"passescount"`
}

type tleResponse struct {
	Info infoPayload `json:"info"`
	TLE  *string     `json:"tle"`
}

type passPayload struct {
	StartAz        float64 `json:"startAz"`
	StartAzCompass string  `json:"startAzCompass"`
	StartEl        float64 `json:"startEl"`
	StartUTC       int64   `json:"startUTC"`
	MaxAz          float64 `json:"maxAz"`
	MaxAzCompass   string  `json:"maxAzCompass"`
	MaxEl          float64 `json:"maxEl"`
	MaxUTC         int64   `json:"maxUTC"`
	EndAz          float64 `json:"endAz"`
	EndAzCompass   string  `json:"endAzCompass"`
	EndEl          float64 `json:"endEl"`
	EndUTC         int64   `json:"endUTC"`
	Mag            float64 `json:"mag"`
	Duration       int     `json:"duration"`
}

type passesResponse struct {
	Info   infoPayload   `json:"info"`
	Passes []passPayload `json:"passes"`
}

type positionPayload struct {
	SatLatitude  float64  `json:"satlatitude"`
	SatLongitude float64  `json:"satlongitude"`
	SatAltitude  *float64 `json:"sataltitude"`
	Azimuth      float64  `json:"azimuth"`
	Elevation    float64  `json:"elevation"`
	RA           float64  `json:"ra"`
	Dec          float64  `json:"dec"`
	Timestamp    int64    `json:"timestamp"`
}

type positionsResponse struct {
	Info      infoPayload        `json:"info"`
	Positions *[]positionPayload `json:"positions"`
}

type aboveSatPayload struct {
	SatID         int     `json:"satid"`
	SatName       string  `json:"satname"`
	IntDesignator string  `json:"intDesignator"`
	LaunchDate    string  `json:"launchDate"`
	SatLat        float64 `json:"satlat"`
	SatLng        float64 `json:"satlng"`
	SatAlt        float64 `json:"satalt"`
}

type aboveResponse struct {
	Info  infoPayload       `json:"info"`
	Above []aboveSatPayload `json:"above"`
}
