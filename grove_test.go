package grove

import (
	"testing"

	"github.com/pbanos/grove/boost"
	"github.com/pbanos/grove/dataset"
	"github.com/pbanos/grove/feature"
	"github.com/pbanos/grove/sampling"
	"github.com/pbanos/grove/tree"
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

// countingModel records the sizes of the views it is trained and tested on
type countingModel struct {
	trained []int
	tested  []int
}

func (cm *countingModel) Train(v dataset.View, class *feature.EnumAttribute) error {
	cm.trained = append(cm.trained, v.InstanceCount())
	return nil
}

func (cm *countingModel) Classify(*dataset.Instance, *feature.EnumAttribute) (feature.Value, error) {
	return "yes", nil
}

func (cm *countingModel) Test(v dataset.View, class *feature.EnumAttribute) (float64, error) {
	cm.tested = append(cm.tested, v.InstanceCount())
	return tree.Accuracy(v, class, cm.Classify)
}

var (
	_ Model = (*tree.Model)(nil)
	_ Model = (*boost.Model)(nil)
)

func TestFoldsPartitionTheView(t *testing.T) {
	d := weather(t)
	for _, k := range []int{2, 3, 5, 14} {
		folds, err := Folds(d, k)
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if len(folds) != k {
			t.Fatalf("expected %d folds, got %d", k, len(folds))
		}
		tested := make(map[*dataset.Instance]int)
		for i, f := range folds {
			if f.Training.InstanceCount()+f.Test.InstanceCount() != d.InstanceCount() {
				t.Errorf("k=%d fold %d does not cover the view", k, i)
			}
			inTest := make(map[*dataset.Instance]bool)
			for _, instance := range dataset.Instances(f.Test) {
				inTest[instance] = true
				tested[instance]++
			}
			for _, instance := range dataset.Instances(f.Training) {
				if inTest[instance] {
					t.Errorf("k=%d fold %d has an instance in both training and test", k, i)
				}
			}
		}
		for _, instance := range dataset.Instances(d) {
			if tested[instance] != 1 {
				t.Errorf("k=%d: instance tested %d times", k, tested[instance])
			}
		}
	}
}

func TestTestFoldBounds(t *testing.T) {
	d := weather(t)
	// 14 instances in 4 folds: [0,3) [3,7) [7,10) [10,14)
	expected := []int{3, 4, 3, 4}
	for i, n := range expected {
		if c := TestFold(d, i, 4).InstanceCount(); c != n {
			t.Errorf("expected fold %d to have %d instances, got %d", i, n, c)
		}
	}
	if TestFold(d, 1, 4).InstanceAt(0) != d.InstanceAt(3) {
		t.Errorf("expected fold 1 to start at instance 3")
	}
	if TestFold(d, 0, 0) != dataset.View(d) || TrainFold(d, 0, 0) != dataset.View(d) {
		t.Errorf("expected 0 folds to return the whole view")
	}
}

func TestInvalidFolds(t *testing.T) {
	d := weather(t)
	for _, k := range []int{-1, 0, 1, 15} {
		if _, err := Folds(d, k); err != ErrInvalidFolds {
			t.Errorf("k=%d: expected ErrInvalidFolds, got %v", k, err)
		}
		if _, err := StratifiedFolds(d, play, k, nil); err != ErrInvalidFolds {
			t.Errorf("k=%d: expected ErrInvalidFolds for stratified folds, got %v", k, err)
		}
	}
}

func TestStratify(t *testing.T) {
	strata := Stratify(weather(t), play)
	if len(strata) != 2 {
		t.Fatalf("expected 2 strata, got %d", len(strata))
	}
	if strata[0].InstanceCount() != 9 || strata[1].InstanceCount() != 5 {
		t.Errorf("expected 9 yes and 5 no, got %d and %d", strata[0].InstanceCount(), strata[1].InstanceCount())
	}
}

func TestStratifiedFoldsKeepClassDistribution(t *testing.T) {
	d := weather(t)
	folds, err := StratifiedFolds(d, play, 3, sampling.NewSource(4))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	// 9 yes split as 3/3/3 and 5 no split as 2/2/1
	expectedNo := []int{2, 2, 1}
	tested := make(map[*dataset.Instance]int)
	for i, f := range folds {
		yes := dataset.Select(f.Test, play, "yes").InstanceCount()
		no := dataset.Select(f.Test, play, "no").InstanceCount()
		if yes != 3 || no != expectedNo[i] {
			t.Errorf("fold %d: expected 3 yes and %d no, got %d and %d", i, expectedNo[i], yes, no)
		}
		if f.Training.InstanceCount()+f.Test.InstanceCount() != d.InstanceCount() {
			t.Errorf("fold %d does not cover the view", i)
		}
		for _, instance := range dataset.Instances(f.Test) {
			tested[instance]++
		}
	}
	if len(tested) != d.InstanceCount() {
		t.Errorf("expected every instance to be tested once, got %d tested", len(tested))
	}
}

func TestStratifiedFoldsAreNeverEmpty(t *testing.T) {
	d := weather(t)
	for _, k := range []int{2, 5, 10, 14} {
		folds, err := StratifiedFolds(d, play, k, sampling.NewSource(1))
		if err != nil {
			t.Fatalf("k=%d: unexpected error %v", k, err)
		}
		tested := 0
		for i, f := range folds {
			n := f.Test.InstanceCount()
			if n < d.InstanceCount()/k || n > d.InstanceCount()/k+1 {
				t.Errorf("k=%d fold %d: expected %d or %d test instances, got %d", k, i, d.InstanceCount()/k, d.InstanceCount()/k+1, n)
			}
			if f.Training.InstanceCount()+n != d.InstanceCount() {
				t.Errorf("k=%d fold %d does not cover the view", k, i)
			}
			tested += n
		}
		if tested != d.InstanceCount() {
			t.Errorf("k=%d: expected %d instances tested, got %d", k, d.InstanceCount(), tested)
		}
	}
	result, err := StratifiedCrossValidate(d, play, tree.New(10), 10, sampling.NewSource(1))
	if err != nil {
		t.Fatalf("unexpected error cross validating on 10 folds: %v", err)
	}
	if result.Mean < 0 || result.Mean > 1 {
		t.Errorf("unexpected result %v", result)
	}
}

func TestCrossValidate(t *testing.T) {
	d := weather(t)
	m := &countingModel{}
	result, err := CrossValidate(d, play, m, 7)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	for i := range m.trained {
		if m.trained[i] != 12 || m.tested[i] != 2 {
			t.Errorf("fold %d: expected training on 12 and testing on 2, got %d and %d", i, m.trained[i], m.tested[i])
		}
	}
	if len(m.trained) != 7 {
		t.Errorf("expected 7 trials, got %d", len(m.trained))
	}
	// always predicting yes is right on 9 of 14 instances
	if result.Mean < 0.64 || result.Mean > 0.65 {
		t.Errorf("expected a mean accuracy of 9/14, got %v", result.Mean)
	}
}

func TestStratifiedCrossValidateTree(t *testing.T) {
	d := weather(t)
	result, err := StratifiedCrossValidate(d, play, tree.New(10), 3, sampling.NewSource(2))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if result.Mean < 0 || result.Mean > 1 || result.Deviation < 0 {
		t.Errorf("unexpected result %v", result)
	}
}

func TestEvaluateReportsTrials(t *testing.T) {
	d := weather(t)
	folds, err := Folds(d, 2)
	if err != nil {
		t.Fatal(err)
	}
	var trials []int
	_, err = Evaluate(folds, play, tree.New(3), func(trial int, accuracy float64) {
		trials = append(trials, trial)
		if accuracy < 0 || accuracy > 1 {
			t.Errorf("accuracy out of range %v", accuracy)
		}
	})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(trials) != 2 || trials[0] != 0 || trials[1] != 1 {
		t.Errorf("expected trials 0 and 1 to be reported, got %v", trials)
	}
}

func TestTrainAndTest(t *testing.T) {
	d := weather(t)
	m := &countingModel{}
	result, err := TrainAndTest(d, play, m, 0.7, 4, sampling.NewSource(6))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(m.trained) != 4 {
		t.Fatalf("expected 4 trials, got %d", len(m.trained))
	}
	for i := range m.trained {
		if m.trained[i] != 10 || m.tested[i] != 4 {
			t.Errorf("trial %d: expected 10/4 split, got %d/%d", i, m.trained[i], m.tested[i])
		}
	}
	if result.Mean < 0 || result.Mean > 1 {
		t.Errorf("unexpected result %v", result)
	}
	if _, err := TrainAndTest(d, play, m, 1, 4, nil); err != ErrInvalidRatio {
		t.Errorf("expected ErrInvalidRatio, got %v", err)
	}
	if _, err := TrainAndTest(d, play, m, 0.5, 0, nil); err != ErrInvalidRepeats {
		t.Errorf("expected ErrInvalidRepeats, got %v", err)
	}
}

func TestTrainAndTestBoost(t *testing.T) {
	d := weather(t)
	m := boost.New(3, 2)
	m.Rand = sampling.NewSource(12)
	result, err := TrainAndTest(d, play, m, 0.66, 3, sampling.NewSource(13))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if result.Mean < 0 || result.Mean > 1 {
		t.Errorf("unexpected result %v", result)
	}
}
