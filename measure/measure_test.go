package measure

import (
	"math"
	"testing"

	"github.com/pbanos/grove/dataset"
	"github.com/pbanos/grove/feature"
	"github.com/pbanos/grove/sampling"
)

var (
	outlook     = feature.NewEnumAttribute("outlook", "sunny", "overcast", "rainy")
	temperature = feature.NewEnumAttribute("temperature", "hot", "mild", "cool")
	humidity    = feature.NewEnumAttribute("humidity", "high", "normal")
	windy       = feature.NewEnumAttribute("windy", "true", "false")
	play        = feature.NewEnumAttribute("play", "yes", "no")
)

var weatherRows = [][]feature.Value{
	{"sunny", "hot", "high", "false", "no"},
	{"sunny", "hot", "high", "true", "no"},
	{"overcast", "hot", "high", "false", "yes"},
	{"rainy", "mild", "high", "false", "yes"},
	{"rainy", "cool", "normal", "false", "yes"},
	{"rainy", "cool", "normal", "true", "no"},
	{"overcast", "cool", "normal", "true", "yes"},
	{"sunny", "mild", "high", "false", "no"},
	{"sunny", "cool", "normal", "false", "yes"},
	{"rainy", "mild", "normal", "false", "yes"},
	{"sunny", "mild", "normal", "true", "yes"},
	{"overcast", "mild", "high", "true", "yes"},
	{"overcast", "hot", "normal", "false", "yes"},
	{"rainy", "mild", "high", "true", "no"},
}

func weather(t *testing.T) *dataset.Dataset {
	t.Helper()
	d := dataset.New("weather", outlook, temperature, humidity, windy, play)
	for i, row := range weatherRows {
		_, err := d.Append(row...)
		if err != nil {
			t.Fatalf("appending row %d: %v", i, err)
		}
	}
	return d
}

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestRatio(t *testing.T) {
	d := weather(t)
	if r := Ratio(d, play, "yes"); !almostEqual(r, 9.0/14, 1e-12) {
		t.Errorf("expected ratio 9/14 for play=yes, got %v", r)
	}
	var sum float64
	for _, v := range outlook.Values() {
		sum += Ratio(d, outlook, v)
	}
	if !almostEqual(sum, 1, 1e-12) {
		t.Errorf("expected ratios to add up to 1, got %v", sum)
	}
	if r := Ratio(dataset.New("empty", play), play, "yes"); r != 0 {
		t.Errorf("expected ratio 0 on an empty view, got %v", r)
	}
}

func TestMostCommonValue(t *testing.T) {
	d := weather(t)
	if v := MostCommonValue(d, play); v != "yes" {
		t.Errorf("expected yes, got %s", v)
	}
	// sunny and rainy have 5 instances each, sunny is declared first
	if v := MostCommonValue(d, outlook); v != "sunny" {
		t.Errorf("expected sunny, got %s", v)
	}
	if v := MostCommonValue(dataset.Select(d, outlook, "overcast"), play); v != "yes" {
		t.Errorf("expected yes on overcast days, got %s", v)
	}
}

func TestEntropy(t *testing.T) {
	d := weather(t)
	if e := Entropy(d, play); !almostEqual(e, 0.940, 0.001) {
		t.Errorf("expected entropy 0.940, got %v", e)
	}
	if e := Entropy(dataset.Select(d, outlook, "overcast"), play); e != 0 {
		t.Errorf("expected entropy 0 on a pure view, got %v", e)
	}
	if e := Entropy(dataset.New("empty", play), play); e != 0 {
		t.Errorf("expected entropy 0 on an empty view, got %v", e)
	}
	balanced := dataset.NewListView(dataset.NewRangeView(d, 0, 2), dataset.NewRangeView(d, 2, 4))
	if e := Entropy(balanced, play); !almostEqual(e, 1, 1e-12) {
		t.Errorf("expected entropy 1 on a balanced view, got %v", e)
	}
}

func TestInformationGain(t *testing.T) {
	d := weather(t)
	testCases := []struct {
		attribute *feature.EnumAttribute
		expected  float64
	}{
		{outlook, 0.247},
		{temperature, 0.029},
		{humidity, 0.152},
		{windy, 0.048},
	}
	for _, tc := range testCases {
		if g := InformationGain(d, play, tc.attribute); !almostEqual(g, tc.expected, 0.001) {
			t.Errorf("expected information gain %v for %s, got %v", tc.expected, tc.attribute.Name(), g)
		}
	}
}

func TestInformationGainIsNotNegative(t *testing.T) {
	src := sampling.NewSource(99)
	a := feature.NewEnumAttribute("a", "0", "1", "2")
	b := feature.NewEnumAttribute("b", "0", "1")
	for trial := 0; trial < 20; trial++ {
		d := dataset.New("random", a, b)
		for i := 0; i < 30; i++ {
			_, err := d.Append(a.ValueAt(int(src.Float64()*3)), b.ValueAt(int(src.Float64()*2)))
			if err != nil {
				t.Fatal(err)
			}
		}
		if g := InformationGain(d, b, a); g < -1e-12 {
			t.Fatalf("negative information gain %v on trial %d", g, trial)
		}
	}
}

func TestMeanDev(t *testing.T) {
	r, err := MeanDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !almostEqual(r.Mean, 5, 1e-12) || !almostEqual(r.Deviation, 2, 1e-12) {
		t.Errorf("expected 5 ± 2, got %v", r)
	}
	r, err = MeanDev([]float64{0.5})
	if err != nil || r.Mean != 0.5 || r.Deviation != 0 {
		t.Errorf("expected 0.5 ± 0, got %v, %v", r, err)
	}
	_, err = MeanDev(nil)
	if err != ErrNoValues {
		t.Errorf("expected ErrNoValues, got %v", err)
	}
}
