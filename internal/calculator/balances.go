package calculator

// PaymentSummary tracks how much of an allocation has been collected.
type PaymentSummary struct {
	Paid        int
	Unpaid      int
	Collected   float64 // Sum of Net over people marked paid
	Outstanding float64 // Sum of Net over people still owing
}

// Summarize splits an allocation's nets into collected and outstanding
// amounts. isPaid reports the paid flag of the i-th share.
func Summarize(shares []Share, isPaid func(i int) bool) PaymentSummary {
	var summary PaymentSummary
	for i, s := range shares {
		if isPaid(i) {
			summary.Paid++
			summary.Collected += s.Net
			continue
		}
		summary.Unpaid++
		summary.Outstanding += s.Net
	}
	return summary
}
