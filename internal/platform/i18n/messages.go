package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// UI copy keyed by message ID. English doubles as the message catalog key.
func init() {
	set := func(tag language.Tag, key, text string) {
		_ = message.SetString(tag, key, text)
	}

	set(language.Spanish, "Missing Persons", "Personas Desaparecidas")
	set(language.Spanish, "Total Reports", "Reportes Totales")
	set(language.Spanish, "Resolved", "Resueltos")
	set(language.Spanish, "Active Cases", "Casos Activos")
	set(language.Spanish, "Recent Reports", "Reportes Recientes")
	set(language.Spanish, "Search results for", "Resultados de búsqueda para")
	set(language.Spanish, "No results found.", "No se encontraron resultados.")
	set(language.Spanish, "No reports found.", "No se encontraron reportes.")
	set(language.Spanish, "Sign In", "Iniciar Sesión")
	set(language.Spanish, "Sign Out", "Cerrar Sesión")
	set(language.Spanish, "Create Account", "Crear Cuenta")
	set(language.Spanish, "Admin Sign In", "Acceso de Administrador")
	set(language.Spanish, "Admin sign in", "Acceso de administrador")
	set(language.Spanish, "Member sign in", "Acceso de miembro")
	set(language.Spanish, "Already have an account? Sign in", "¿Ya tienes una cuenta? Inicia sesión")
	set(language.Spanish, "My Reports", "Mis Reportes")
	set(language.Spanish, "Admin", "Administración")
	set(language.Spanish, "Report Missing Person", "Reportar Persona Desaparecida")
	set(language.Spanish, "Submit Report", "Enviar Reporte")
	set(language.Spanish, "Search", "Buscar")
	set(language.Spanish, "Search by name or location", "Buscar por nombre o ubicación")
	set(language.Spanish, "Toggle theme", "Cambiar tema")
	set(language.Spanish, "Name", "Nombre")
	set(language.Spanish, "Email", "Correo electrónico")
	set(language.Spanish, "Password", "Contraseña")
	set(language.Spanish, "Confirm Password", "Confirmar Contraseña")
	set(language.Spanish, "Age", "Edad")
	set(language.Spanish, "Gender", "Género")
	set(language.Spanish, "Female", "Femenino")
	set(language.Spanish, "Male", "Masculino")
	set(language.Spanish, "Other", "Otro")
	set(language.Spanish, "Last seen", "Visto por última vez")
	set(language.Spanish, "Last seen location", "Última ubicación conocida")
	set(language.Spanish, "Last seen date", "Fecha de última vez visto")
	set(language.Spanish, "Description", "Descripción")
	set(language.Spanish, "Contact details", "Datos de contacto")
	set(language.Spanish, "Photos", "Fotos")
	set(language.Spanish, "Photo", "Foto")
	set(language.Spanish, "Location", "Ubicación")
	set(language.Spanish, "Uploaded", "Subido")
	set(language.Spanish, "Upload", "Subir")
	set(language.Spanish, "Upload Unidentified Person", "Subir Persona No Identificada")
	set(language.Spanish, "Unidentified Persons", "Personas No Identificadas")
	set(language.Spanish, "All Reports", "Todos los Reportes")
	set(language.Spanish, "Status", "Estado")
	set(language.Spanish, "Update", "Actualizar")
	set(language.Spanish, "Pending", "Pendiente")
	set(language.Spanish, "Approved", "Aprobado")
	set(language.Spanish, "Rejected", "Rechazado")
	set(language.Spanish, "Possible match found", "Posible coincidencia encontrada")
	set(language.Spanish, "Back to home", "Volver al inicio")
	set(language.Spanish, "Back to admin", "Volver a administración")
	set(language.Spanish, "Passwords do not match", "Las contraseñas no coinciden")
	set(language.Spanish, "You have not submitted any reports yet.", "Aún no has enviado ningún reporte.")
	set(language.Spanish, "No unidentified persons uploaded yet.", "Aún no se han subido personas no identificadas.")
	set(language.Spanish, "Help reunite missing people with their families", "Ayuda a reunir a personas desaparecidas con sus familias")
	set(language.Spanish, "Browse active reports or submit one of your own.", "Explora los reportes activos o envía uno propio.")
	set(language.Spanish, "Listings are temporarily unavailable. Please try again later.", "Los listados no están disponibles temporalmente. Inténtalo de nuevo más tarde.")
	set(language.Spanish, "Helping families find their loved ones", "Ayudando a las familias a encontrar a sus seres queridos")
}
