// internal/domain/homework/homework.go
package homework

import (
	"encoding/json"
	"fmt"
)

// Verdicts maps every recognized review status to its human-readable sentence.
// The set is closed: any other status value in an API response is an error,
// not a silent skip.
var Verdicts = map[string]string{
	"approved":  "Работа проверена: ревьюеру всё понравилось. Ура!",
	"reviewing": "Работа взята на проверку ревьюером.",
	"rejected":  "Работа проверена: у ревьюера есть замечания.",
}

// CheckResponse validates the decoded API payload and returns the homeworks
// list unchanged (possibly empty). The payload stays untyped up to this point;
// transport and shape validation are kept as separate concerns.
func CheckResponse(raw any) ([]any, error) {
	body, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrResponseNotObject, raw)
	}

	if _, ok := body["current_date"]; !ok {
		return nil, ErrDateMissing
	}

	rawHomeworks, ok := body["homeworks"]
	if !ok {
		return nil, ErrHomeworksMissing
	}

	homeworks, ok := rawHomeworks.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrHomeworksNotList, rawHomeworks)
	}
	return homeworks, nil
}

// ParseStatus renders the notification text for a single homework record.
func ParseStatus(record any) (string, error) {
	hw, _ := record.(map[string]any)

	name, _ := hw["homework_name"].(string)
	if name == "" {
		return "", ErrNameMissing
	}

	status, _ := hw["status"].(string)
	verdict, ok := Verdicts[status]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}

	return fmt.Sprintf("Изменился статус проверки работы %q. %s", name, verdict), nil
}

// CurrentDate extracts the server timestamp from the payload. ok is false when
// the field is absent or not an integral number, in which case the caller
// keeps its previous cursor.
func CurrentDate(raw any) (int64, bool) {
	body, ok := raw.(map[string]any)
	if !ok {
		return 0, false
	}
	num, ok := body["current_date"].(json.Number)
	if !ok {
		return 0, false
	}
	ts, err := num.Int64()
	if err != nil {
		return 0, false
	}
	return ts, true
}
