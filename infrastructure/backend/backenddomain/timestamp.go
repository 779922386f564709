package backenddomain

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// Layouts aceitos para timestamps ISO-8601. O servidor pode enviar datas sem
// fuso horário; nesse caso elas são interpretadas como UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// ParseTimestamp interpreta um timestamp ISO-8601 com ou sem fuso
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("timestamp inválido: %q", value)
}

// Timestamp é um time.Time serializado em ISO-8601
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("timestamp inválido: %s", data)
	}

	parsed, err := ParseTimestamp(raw)
	if err != nil {
		return err
	}

	t.Time = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.UTC().Format(time.RFC3339Nano))), nil
}
