package adaptor

// Response messages shown to the frontend
const (
	msgInvalidBody   = "Solicitud invalida"
	msgNotFound      = "No Encontrado"
	msgRoleError     = "Ha ocurrido un error. Inténtelo más tarde"
	msgUserError     = "Ha ocurrido un error, inténtelo más tarde"
	msgInvalidFields = "Datos invalidos"

	msgRoleCreated       = "Rol Creado Correctamente"
	msgRoleUpdated       = "Rol modificado Correctamente"
	msgRoleStatusChanged = "Estado del Rol modificado Correctamente"
	msgRoleDeleted       = "Rol Eliminado Correctamente"
	msgRoleDuplicate     = "Rol ya registrado"
	msgRoleMissing       = "El Rol no existe"

	msgUserCreated       = "Usuario Creado Correctamente"
	msgUserUpdated       = "Usuario modificado Correctamente"
	msgPasswordChanged   = "Password modificada Correctamente"
	msgUserStatusChanged = "Estado del Usuario modificado Correctamente"
	msgUserDeleted       = "Usuario Eliminado Correctamente"
	msgUserDuplicate     = "Usuario ya registrado"
	msgUserMissing       = "El Usuario no existe"
	msgUserDisabled      = "El usuario se encuentra deshabilitado, comuníquese con el administrador"

	msgLoginRoleDisabled  = "El usuario se encuentra registrado con un permiso deshabilitado, comuníquese con el administrador"
	msgTargetRoleDisabled = "Este rol se encuentra deshabilitado, comuníquese con el administrador"
	msgPasswordIncorrect  = "El Password es Incorrecto"
	msgCurrentPasswordBad = "El password actual es incorrecto"
)
