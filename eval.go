package botsdk

import "fmt"

// ──────────────────────────────────────────────
// Classifier evaluation — accuracy, confusion, precision/recall
// ──────────────────────────────────────────────

// Accuracy returns the fraction of predictions matching the ground
// truth. Empty input scores 0; mismatched lengths are an error.
func Accuracy(predictions, truth []Intent) (float64, error) {
	if len(predictions) != len(truth) {
		return 0, fmt.Errorf("predictions and ground truth length mismatch: %d != %d", len(predictions), len(truth))
	}
	if len(predictions) == 0 {
		return 0, nil
	}
	correct := 0
	for i, p := range predictions {
		if p == truth[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(predictions)), nil
}

// ConfusionMatrix returns counts keyed by [actual][predicted].
func ConfusionMatrix(predictions, truth []Intent) (map[Intent]map[Intent]int, error) {
	if len(predictions) != len(truth) {
		return nil, fmt.Errorf("predictions and ground truth length mismatch: %d != %d", len(predictions), len(truth))
	}
	matrix := make(map[Intent]map[Intent]int)
	for i, p := range predictions {
		actual := truth[i]
		if matrix[actual] == nil {
			matrix[actual] = make(map[Intent]int)
		}
		matrix[actual][p]++
	}
	return matrix, nil
}

// PrecisionRecall returns precision and recall for one intent. Both
// are 0 when the intent never appears in the respective denominator.
func PrecisionRecall(predictions, truth []Intent, intent Intent) (precision, recall float64, err error) {
	if len(predictions) != len(truth) {
		return 0, 0, fmt.Errorf("predictions and ground truth length mismatch: %d != %d", len(predictions), len(truth))
	}
	var tp, fp, fn int
	for i, p := range predictions {
		actual := truth[i]
		switch {
		case p == intent && actual == intent:
			tp++
		case p == intent && actual != intent:
			fp++
		case p != intent && actual == intent:
			fn++
		}
	}
	if tp+fp > 0 {
		precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		recall = float64(tp) / float64(tp+fn)
	}
	return precision, recall, nil
}

// IntentDistribution counts label occurrences.
func IntentDistribution(intents []Intent) map[Intent]int {
	dist := make(map[Intent]int, len(intents))
	for _, in := range intents {
		dist[in]++
	}
	return dist
}
