package util

import "fmt"

// ConfigurationError: faltan parámetros de entorno o conexión. Fatal en el
// arranque; toda petición falla hasta que se corrige.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string { return e.Msg }

func NewConfigurationError(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Msg: fmt.Sprintf(format, args...)}
}

// ValidationError: parámetro requerido ausente o mal formado en la petición.
type ValidationError struct {
	Param string
	Msg   string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewMissingParamError(param string) *ValidationError {
	return &ValidationError{Param: param, Msg: fmt.Sprintf("Falta parámetro %s", param)}
}

func NewInvalidParamError(param string) *ValidationError {
	return &ValidationError{Param: param, Msg: fmt.Sprintf("Parámetro %s inválido: se espera un entero", param)}
}

// DataSourceError: fallo al ejecutar una consulta contra la base Moodle. La
// petición completa falla; nunca se devuelven resultados parciales.
type DataSourceError struct {
	Op  string
	Err error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("error consultando la base Moodle (%s): %v", e.Op, e.Err)
}

func (e *DataSourceError) Unwrap() error { return e.Err }

func WrapDataSourceError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &DataSourceError{Op: op, Err: err}
}
