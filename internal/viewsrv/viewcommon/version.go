package viewcommon

// ServerVersion is the version of the view server.
const ServerVersion = "0.1.0"

// ApiVersion is the version of the exposed API.
const ApiVersion = "v1"
