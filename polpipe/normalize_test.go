package polpipe

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "collapses whitespace runs",
			in:   "Total  Health\t Plan\n\nSum   Assured",
			want: "Total Health Plan Sum Assured",
		},
		{
			name: "removes CIN line",
			in:   "Total Health Plan\nCIN: U66010MH2002PLC134869 registered office\nSum Assured",
			want: "Total Health Plan Sum Assured",
		},
		{
			name: "removes trade logo line",
			in:   "Total Health Plan\nTrade Logo displayed above belongs to HDFC Ltd\nSum Assured",
			want: "Total Health Plan Sum Assured",
		},
		{
			name: "CIN line without registration number survives",
			in:   "see CIN: below\nnext line",
			want: "see CIN: below next line",
		},
		{
			name: "trims leading and trailing whitespace",
			in:   "  padded text  ",
			want: "padded text",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalize(tt.in); got != tt.want {
				t.Errorf("normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	// WHAT: normalize(normalize(t)) == normalize(t).
	// WHY: extractors normalize independently, so a second pass over already
	// normalized text must not change it.
	in := "Total Health Plan\nCIN: U66010MH2002PLC134869 office\n  Sum   Assured - Rs. 5,00,000\n"
	once := normalize(in)
	twice := normalize(once)
	if once != twice {
		t.Errorf("normalize is not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
}
