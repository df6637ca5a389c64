package rules

// Default returns a starter rule list written by `vypis init`. The
// patterns cover common Czech merchants; operators extend the file as
// unmatched rows surface.
func Default() []Spec {
	return []Spec{
		{Name: "Albert", Regex: "ALBERT", Category: "groceries"},
		{Name: "Lidl", Regex: "LIDL", Category: "groceries"},
		{Name: "Tesco", Regex: "TESCO", Category: "groceries"},
		{Name: "Billa", Regex: "BILLA", Category: "groceries"},
		{Name: "Prague transit", Regex: "DPP|PID LITACKA", Category: "transport"},
		{Name: "Ceske drahy", Regex: "CESKE DRAHY|CD ", Category: "transport"},
		{Name: "Netflix", Regex: "NETFLIX", Category: "subscriptions"},
		{Name: "Spotify", Regex: "SPOTIFY", Category: "subscriptions"},
		{Name: "Alza", Regex: "ALZA", Category: "electronics"},
		{Name: "Salary", Regex: "MZDA", Category: "income"},
	}
}
