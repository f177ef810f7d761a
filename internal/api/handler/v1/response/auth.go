package response

// ValidacionCodigo is the validate-code envelope. Unlike every other route
// it answers with "valid" instead of "success".
type ValidacionCodigo struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

type ClientePublico struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
	Correo string `json:"correo"`
}

// Redencion is shared by register and login: both end in a consumed code
// and an assigned raffle number.
type Redencion struct {
	Success    bool           `json:"success"`
	Cliente    ClientePublico `json:"cliente"`
	NumeroRifa string         `json:"numero_rifa"`
	Token      string         `json:"token"`
}
