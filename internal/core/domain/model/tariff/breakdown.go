package tariff

// Breakdown is an itemized quote. Every line is a whole currency amount; ServiceFee may be
// negative, Total never is.
type Breakdown struct {
	BaseFare      int `json:"baseFare"`
	DistanceFee   int `json:"distanceFee"`
	WeightFee     int `json:"weightFee"`
	SizeFee       int `json:"sizeFee"`
	ServiceFee    int `json:"serviceFee"`
	StopFee       int `json:"stopFee"`
	MonitoringFee int `json:"monitoringFee"`
	InsuranceFee  int `json:"insuranceFee"`
	PlatformFee   int `json:"platformFee"`
	Total         int `json:"total"`
}

// Sum adds up every line item, without the floor applied to Total.
func (b Breakdown) Sum() int {
	return b.BaseFare + b.DistanceFee + b.WeightFee + b.SizeFee + b.ServiceFee +
		b.StopFee + b.MonitoringFee + b.InsuranceFee + b.PlatformFee
}
