package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Enabled coage os flags frouxos do catálogo (1, "1", "true", true) para um
// booleano de verdade. Toda a coerção acontece aqui, na borda de ingestão;
// o resto do código só enxerga bool.
func Enabled(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case int:
		return v == 1
	case int64:
		return v == 1
	case float64:
		return v == 1
	case string:
		return v == "1" || strings.EqualFold(v, "true")
	default:
		return false
	}
}

// Flag é um booleano que aceita as codificações inconsistentes do catálogo
// tanto no JSON quanto em colunas do banco.
type Flag bool

func (f Flag) Bool() bool {
	return bool(f)
}

func (f *Flag) UnmarshalJSON(data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*f = Flag(Enabled(value))
	return nil
}

func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

func (f *Flag) Scan(value any) error {
	switch v := value.(type) {
	case nil, bool, int64, float64, string:
		*f = Flag(Enabled(v))
		return nil
	case []byte:
		*f = Flag(Enabled(string(v)))
		return nil
	default:
		return fmt.Errorf("flag: tipo não suportado %T", value)
	}
}

func (f Flag) Value() (driver.Value, error) {
	if f {
		return int64(1), nil
	}
	return int64(0), nil
}
