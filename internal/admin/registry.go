// internal/admin/registry.go
package admin

import (
	"github.com/picklefree/picklefree/internal/auth"
	"github.com/picklefree/picklefree/internal/booking"
	"github.com/picklefree/picklefree/internal/category"
	"github.com/picklefree/picklefree/internal/club"
	"github.com/picklefree/picklefree/internal/course"
	"github.com/picklefree/picklefree/internal/facility"
	"github.com/picklefree/picklefree/internal/geo"
	"github.com/picklefree/picklefree/internal/lookup"
	"github.com/picklefree/picklefree/internal/match"
	"github.com/picklefree/picklefree/internal/messaging"
	"github.com/picklefree/picklefree/internal/person"
	"github.com/picklefree/picklefree/internal/ranking"
	"github.com/picklefree/picklefree/internal/schedule"
	"github.com/picklefree/picklefree/internal/survey"
	"github.com/picklefree/picklefree/internal/team"
	"github.com/picklefree/picklefree/internal/tournament"
)

// Registration describes one entity exposed through the administration
// API. The table comment is also applied to the database schema at
// startup. Hidden entities are migrated but get no CRUD routes.
type Registration struct {
	Slug        string
	Table       string
	Comment     string
	Label       string
	LabelPlural string
	ReadOnly    []string
	Hidden      bool
	Model       func() any
	Slice       func() any
}

// soloToken is the read-only field set shared by most token bearers.
var soloToken = []string{"token_qr"}

// Registry enumerates every managed entity, one explicit entry per
// table. Nothing is discovered by reflection: adding an entity means
// adding a row here.
var Registry = []Registration{
	{Slug: "calendario_club", Table: "calendario_club", Comment: "Calendario de un club determinado (cierres prioritarios sobre las aperturas)", Label: "Calendario de club deportivo", LabelPlural: "Calendarios de clubes deportivos", Model: func() any { return &schedule.CalendarioClub{} }, Slice: func() any { return &[]schedule.CalendarioClub{} }},
	{Slug: "calendario_instalacion", Table: "calendario_instalacion", Comment: "Calendario global o de club para una instalación dada (cierres prioritarios sobre las aperturas)", Label: "Calendario de instalación deportiva", LabelPlural: "Calendarios de instalaciones deportivas", Model: func() any { return &schedule.CalendarioInstalacion{} }, Slice: func() any { return &[]schedule.CalendarioInstalacion{} }},
	{Slug: "calendario_pista", Table: "calendario_pista", Comment: "Calendario de una pista dada (cierres prioritarios sobre las aperturas)", Label: "Calendario de pista", LabelPlural: "Calendarios de pistas", Model: func() any { return &schedule.CalendarioPista{} }, Slice: func() any { return &[]schedule.CalendarioPista{} }},
	{Slug: "categoria", Table: "categoria", Comment: "Categorías globales o de club para jugadores, parejas y equipos", Label: "Categoría de club", LabelPlural: "Categorías de clubes", Model: func() any { return &category.Categoria{} }, Slice: func() any { return &[]category.Categoria{} }},
	{Slug: "categoria_equipo", Table: "categoria_equipo", Comment: "Tabla de combinación N:M categoría-equipo", Label: "Categoría de equipo", LabelPlural: "Categorías de equipos", Model: func() any { return &category.CategoriaEquipo{} }, Slice: func() any { return &[]category.CategoriaEquipo{} }},
	{Slug: "categoria_jugador", Table: "categoria_jugador", Comment: "Tabla de combinación N:M categoría-jugador", Label: "Categoría de jugador", LabelPlural: "Categorías de jugadores", Model: func() any { return &category.CategoriaJugador{} }, Slice: func() any { return &[]category.CategoriaJugador{} }},
	{Slug: "categoria_pareja", Table: "categoria_pareja", Comment: "Tabla de combinación N:M categoría-pareja", Label: "Categoría de pareja", LabelPlural: "Categorías de parejas", Model: func() any { return &category.CategoriaPareja{} }, Slice: func() any { return &[]category.CategoriaPareja{} }},
	{Slug: "clase_jugador", Table: "clase_jugador", Comment: "Asistencia a clase de un jugador matriculado en un curso", Label: "Asistencia a clase", LabelPlural: "Asistencias a clases", Model: func() any { return &course.ClaseJugador{} }, Slice: func() any { return &[]course.ClaseJugador{} }},
	{Slug: "clase_profesor", Table: "clase_profesor", Comment: "Impartición de clase por un profesor en el marco de un curso", Label: "Impartición de clase", LabelPlural: "Imparticiones de clases", Model: func() any { return &course.ClaseProfesor{} }, Slice: func() any { return &[]course.ClaseProfesor{} }},
	{Slug: "club", Table: "club", Comment: "Un club deportivo, con o sin instalaciones propias", Label: "Club deportivo", LabelPlural: "Clubes deportivos", ReadOnly: soloToken, Model: func() any { return &club.Club{} }, Slice: func() any { return &[]club.Club{} }},
	{Slug: "configuracion", Table: "configuracion", Comment: "Configuraciones globales o a nivel de club", Label: "Configuración de club", LabelPlural: "Configuraciones de clubes", ReadOnly: []string{"token_qr_global"}, Model: func() any { return &club.Configuracion{} }, Slice: func() any { return &[]club.Configuracion{} }},
	{Slug: "contrato", Table: "contrato", Comment: "Contrato: Tabla de combinación N:M técnico-club", Label: "Contrato [técnico-club]", LabelPlural: "Contratos [técnico-club]", Model: func() any { return &club.Contrato{} }, Slice: func() any { return &[]club.Contrato{} }},
	{Slug: "curso", Table: "curso", Comment: "Cursos impartidos", Label: "Curso impartido", LabelPlural: "Cursos impartidos", ReadOnly: soloToken, Model: func() any { return &course.Curso{} }, Slice: func() any { return &[]course.Curso{} }},
	{Slug: "dependencia", Table: "dependencia", Comment: "Cada lugar de una instalación para otros propósitos", Label: "Dependencia de instalación deportiva", LabelPlural: "Dependencias de instalaciones deportivas", ReadOnly: soloToken, Model: func() any { return &facility.Dependencia{} }, Slice: func() any { return &[]facility.Dependencia{} }},
	{Slug: "destinatario_club", Table: "destinatario_club", Comment: "Clubes destinatarios de un mensaje", Label: "Destinatario [club]", LabelPlural: "Destinatarios [club]", Hidden: true, Model: func() any { return &messaging.DestinatarioClub{} }, Slice: func() any { return &[]messaging.DestinatarioClub{} }},
	{Slug: "destinatario_curso", Table: "destinatario_curso", Comment: "Cursos destinatarios de un mensaje", Label: "Destinatario [curso]", LabelPlural: "Destinatarios [curso]", Hidden: true, Model: func() any { return &messaging.DestinatarioCurso{} }, Slice: func() any { return &[]messaging.DestinatarioCurso{} }},
	{Slug: "destinatario_directivo", Table: "destinatario_directivo", Comment: "Directivos destinatarios de un mensaje", Label: "Destinatario [directivo]", LabelPlural: "Destinatarios [directivo]", Hidden: true, Model: func() any { return &messaging.DestinatarioDirectivo{} }, Slice: func() any { return &[]messaging.DestinatarioDirectivo{} }},
	{Slug: "destinatario_equipo", Table: "destinatario_equipo", Comment: "Equipos destinatarios de un mensaje", Label: "Destinatario [equipo]", LabelPlural: "Destinatarios [equipo]", Hidden: true, Model: func() any { return &messaging.DestinatarioEquipo{} }, Slice: func() any { return &[]messaging.DestinatarioEquipo{} }},
	{Slug: "destinatario_instalacion", Table: "destinatario_instalacion", Comment: "Instalaciones destinatarias de un mensaje", Label: "Destinatario [instalación]", LabelPlural: "Destinatarios [instalación]", Hidden: true, Model: func() any { return &messaging.DestinatarioInstalacion{} }, Slice: func() any { return &[]messaging.DestinatarioInstalacion{} }},
	{Slug: "destinatario_jugador", Table: "destinatario_jugador", Comment: "Jugadores destinatarios de un mensaje", Label: "Destinatario [jugador]", LabelPlural: "Destinatarios [jugador]", Hidden: true, Model: func() any { return &messaging.DestinatarioJugador{} }, Slice: func() any { return &[]messaging.DestinatarioJugador{} }},
	{Slug: "destinatario_operario", Table: "destinatario_operario", Comment: "Operarios destinatarios de un mensaje", Label: "Destinatario [operario]", LabelPlural: "Destinatarios [operario]", Hidden: true, Model: func() any { return &messaging.DestinatarioOperario{} }, Slice: func() any { return &[]messaging.DestinatarioOperario{} }},
	{Slug: "destinatario_pareja", Table: "destinatario_pareja", Comment: "Parejas destinatarias de un mensaje", Label: "Destinatario [pareja]", LabelPlural: "Destinatarios [pareja]", Hidden: true, Model: func() any { return &messaging.DestinatarioPareja{} }, Slice: func() any { return &[]messaging.DestinatarioPareja{} }},
	{Slug: "destinatario_pista", Table: "destinatario_pista", Comment: "Pistas destinatarias de un mensaje", Label: "Destinatario [pista]", LabelPlural: "Destinatarios [pista]", Hidden: true, Model: func() any { return &messaging.DestinatarioPista{} }, Slice: func() any { return &[]messaging.DestinatarioPista{} }},
	{Slug: "destinatario_tecnico", Table: "destinatario_tecnico", Comment: "Técnicos destinatarios de un mensaje", Label: "Destinatario [técnico]", LabelPlural: "Destinatarios [técnico]", Hidden: true, Model: func() any { return &messaging.DestinatarioTecnico{} }, Slice: func() any { return &[]messaging.DestinatarioTecnico{} }},
	{Slug: "destinatario_torneo_dobles", Table: "destinatario_torneo_dobles", Comment: "Torneos de dobles destinatarios de un mensaje", Label: "Destinatario [torneo dobles]", LabelPlural: "Destinatarios [torneo dobles]", Hidden: true, Model: func() any { return &messaging.DestinatarioTorneoDobles{} }, Slice: func() any { return &[]messaging.DestinatarioTorneoDobles{} }},
	{Slug: "destinatario_torneo_equipos", Table: "destinatario_torneo_equipos", Comment: "Torneos por equipos destinatarios de un mensaje", Label: "Destinatario [torneo equipos]", LabelPlural: "Destinatarios [torneo equipos]", Hidden: true, Model: func() any { return &messaging.DestinatarioTorneoEquipos{} }, Slice: func() any { return &[]messaging.DestinatarioTorneoEquipos{} }},
	{Slug: "destinatario_torneo_individual", Table: "destinatario_torneo_individual", Comment: "Torneos individuales destinatarios de un mensaje", Label: "Destinatario [torneo individual]", LabelPlural: "Destinatarios [torneo individual]", Hidden: true, Model: func() any { return &messaging.DestinatarioTorneoIndividual{} }, Slice: func() any { return &[]messaging.DestinatarioTorneoIndividual{} }},
	{Slug: "directivo", Table: "directivo", Comment: "Los directivos son personas con un cargo en un club", Label: "Directivo de club", LabelPlural: "Directivos de clubes", ReadOnly: soloToken, Model: func() any { return &person.Directivo{} }, Slice: func() any { return &[]person.Directivo{} }},
	{Slug: "empleo", Table: "empleo", Comment: "Contrato: Tabla de combinación N:M operario-instalación", Label: "Empleo [operario-instalación]", LabelPlural: "Empleos [operario-instalación]", Model: func() any { return &club.Empleo{} }, Slice: func() any { return &[]club.Empleo{} }},
	{Slug: "envio", Table: "envio", Comment: "Envío de mensajes a personas", Label: "Envío de mensaje", LabelPlural: "Envíos de mensajes", ReadOnly: soloToken, Model: func() any { return &messaging.Envio{} }, Slice: func() any { return &[]messaging.Envio{} }},
	{Slug: "equipo", Table: "equipo", Comment: "Los equipos son conjuntos de N jugadores y 0-2 técnicos", Label: "Equipo", LabelPlural: "Equipos", ReadOnly: soloToken, Model: func() any { return &team.Equipo{} }, Slice: func() any { return &[]team.Equipo{} }},
	{Slug: "estado_clase", Table: "estado_clase", Comment: "Estados posibles de una clase", Label: "Estado de una clase", LabelPlural: "Estados de una clase", Model: func() any { return &lookup.EstadoClase{} }, Slice: func() any { return &[]lookup.EstadoClase{} }},
	{Slug: "estado_envio", Table: "estado_envio", Comment: "Estados posibles de un envío", Label: "Estado de un envío", LabelPlural: "Estados de un envío", Model: func() any { return &lookup.EstadoEnvio{} }, Slice: func() any { return &[]lookup.EstadoEnvio{} }},
	{Slug: "estado_inscripcion", Table: "estado_inscripcion", Comment: "Estados posibles de una inscripción", Label: "Estado de una inscripción", LabelPlural: "Estados de una inscripción", Model: func() any { return &lookup.EstadoInscripcion{} }, Slice: func() any { return &[]lookup.EstadoInscripcion{} }},
	{Slug: "estado_partido", Table: "estado_partido", Comment: "Estados posibles de un partido", Label: "Estado de un partido", LabelPlural: "Estados de un partido", Model: func() any { return &lookup.EstadoPartido{} }, Slice: func() any { return &[]lookup.EstadoPartido{} }},
	{Slug: "etapa", Table: "etapa", Comment: "Etapa: Tabla de combinación N:M técnico-equipo", Label: "Etapa [técnico-equipo]", LabelPlural: "Etapas [técnico-equipo]", Model: func() any { return &team.Etapa{} }, Slice: func() any { return &[]team.Etapa{} }},
	{Slug: "horario_club", Table: "horario_club", Comment: "Horarios de un club determinado", Label: "Horario de club", LabelPlural: "Horarios de clubes", Model: func() any { return &schedule.HorarioClub{} }, Slice: func() any { return &[]schedule.HorarioClub{} }},
	{Slug: "horario_instalacion", Table: "horario_instalacion", Comment: "Horarios globales o de club para una instalación dada", Label: "Horario de instalación deportiva", LabelPlural: "Horarios de instalaciones deportivas", Model: func() any { return &schedule.HorarioInstalacion{} }, Slice: func() any { return &[]schedule.HorarioInstalacion{} }},
	{Slug: "horario_pista", Table: "horario_pista", Comment: "Horarios de una pista dada", Label: "Horario de pista", LabelPlural: "Horarios de pistas", Model: func() any { return &schedule.HorarioPista{} }, Slice: func() any { return &[]schedule.HorarioPista{} }},
	{Slug: "inscripcion_equipo", Table: "inscripcion_equipo", Comment: "Inscripciones de equipos a torneos", Label: "Inscripción de equipo en torneo", LabelPlural: "Inscripciones de equipos en torneos", Model: func() any { return &tournament.InscripcionEquipo{} }, Slice: func() any { return &[]tournament.InscripcionEquipo{} }},
	{Slug: "inscripcion_jugador", Table: "inscripcion_jugador", Comment: "Inscripciones individuales a torneos", Label: "Inscripción de jugador en torneo", LabelPlural: "Inscripciones de jugadores en torneos", Model: func() any { return &tournament.InscripcionJugador{} }, Slice: func() any { return &[]tournament.InscripcionJugador{} }},
	{Slug: "inscripcion_pareja", Table: "inscripcion_pareja", Comment: "Inscripciones de parejas a torneos", Label: "Inscripción de pareja en torneo", LabelPlural: "Inscripciones de parejas en torneos", Model: func() any { return &tournament.InscripcionPareja{} }, Slice: func() any { return &[]tournament.InscripcionPareja{} }},
	{Slug: "instalacion", Table: "instalacion", Comment: "Instalaciones deportivas fijas o temporales donde se juega", Label: "Instalación deportiva", LabelPlural: "Instalaciones deportivas", ReadOnly: soloToken, Model: func() any { return &facility.Instalacion{} }, Slice: func() any { return &[]facility.Instalacion{} }},
	{Slug: "jugador", Table: "jugador", Comment: "Los jugadores son personas que practican un deporte", Label: "Jugador", LabelPlural: "Jugadores", ReadOnly: soloToken, Model: func() any { return &person.Jugador{} }, Slice: func() any { return &[]person.Jugador{} }},
	{Slug: "mandato", Table: "mandato", Comment: "Contrato: Tabla de combinación N:M directivo-club", Label: "Mandato [directivo-club]", LabelPlural: "Mandatos [directivo-club]", Model: func() any { return &club.Mandato{} }, Slice: func() any { return &[]club.Mandato{} }},
	{Slug: "material", Table: "material", Comment: "Elementos portables que se almacenan en dependencias", Label: "Material", LabelPlural: "Materiales", ReadOnly: soloToken, Model: func() any { return &facility.Material{} }, Slice: func() any { return &[]facility.Material{} }},
	{Slug: "matricula_jugador", Table: "matricula_jugador", Comment: "Matriculaciones individuales a cursos", Label: "Matrícula [jugador-curso]", LabelPlural: "Matrículas [jugador-curso]", Model: func() any { return &course.MatriculaJugador{} }, Slice: func() any { return &[]course.MatriculaJugador{} }},
	{Slug: "membresia", Table: "membresia", Comment: "Membresía: Tabla de combinación N:M jugador-equipo", Label: "Membresía [jugador-equipo]", LabelPlural: "Membresías [jugador-equipo]", Model: func() any { return &team.Membresia{} }, Slice: func() any { return &[]team.Membresia{} }},
	{Slug: "mensaje", Table: "mensaje", Comment: "Mensajes de un club", Label: "Mensaje", LabelPlural: "Mensajes", ReadOnly: soloToken, Model: func() any { return &messaging.Mensaje{} }, Slice: func() any { return &[]messaging.Mensaje{} }},
	{Slug: "operario", Table: "operario", Comment: "Los operarios son personas que poseen una capacitación", Label: "Operario", LabelPlural: "Operarios", ReadOnly: soloToken, Hidden: true, Model: func() any { return &person.Operario{} }, Slice: func() any { return &[]person.Operario{} }},
	{Slug: "pareja", Table: "pareja", Comment: "Las parejas son conjuntos de dos jugadores", Label: "Pareja", LabelPlural: "Parejas", ReadOnly: soloToken, Model: func() any { return &team.Pareja{} }, Slice: func() any { return &[]team.Pareja{} }},
	{Slug: "partido_dobles", Table: "partido_dobles", Comment: "Partidos de dobles sueltos o de torneo, y sus resultados", Label: "Partido de dobles", LabelPlural: "Partidos de dobles", ReadOnly: []string{"token_qr", "token_qr_confirmacion"}, Model: func() any { return &match.PartidoDobles{} }, Slice: func() any { return &[]match.PartidoDobles{} }},
	{Slug: "partido_individual", Table: "partido_individual", Comment: "Partidos individuales sueltos o de torneo, y sus resultados", Label: "Partido individual", LabelPlural: "Partidos individuales", ReadOnly: []string{"token_qr", "token_qr_confirmacion"}, Model: func() any { return &match.PartidoIndividual{} }, Slice: func() any { return &[]match.PartidoIndividual{} }},
	{Slug: "persona", Table: "persona", Comment: "Agrupamos todos los tipos de persona (evitamos duplicidades)", Label: "Persona", LabelPlural: "Personas", Model: func() any { return &person.Persona{} }, Slice: func() any { return &[]person.Persona{} }},
	{Slug: "pertenencia", Table: "pertenencia", Comment: "Pertenencia: Tabla de combinación N:M jugador-club", Label: "Pertenencia [jugador-club]", LabelPlural: "Pertenencias [jugador-club]", Model: func() any { return &club.Pertenencia{} }, Slice: func() any { return &[]club.Pertenencia{} }},
	{Slug: "pista", Table: "pista", Comment: "Cada lugar de una instalación donde se juegan partidos", Label: "Pista", LabelPlural: "Pistas", ReadOnly: soloToken, Model: func() any { return &facility.Pista{} }, Slice: func() any { return &[]facility.Pista{} }},
	{Slug: "posesion", Table: "posesion", Comment: "Posesion: Tabla de combinación N:M instalacion-club", Label: "Posesión [instalación-club]", LabelPlural: "Posesiones [instalación-club]", Model: func() any { return &club.Posesion{} }, Slice: func() any { return &[]club.Posesion{} }},
	{Slug: "provincia", Table: "provincia", Comment: "Provincias de España", Label: "Provincia", LabelPlural: "Provincias", Model: func() any { return &geo.Provincia{} }, Slice: func() any { return &[]geo.Provincia{} }},
	{Slug: "ranking_jugador_club", Table: "ranking_jugador_club", Comment: "Ranking de un jugador en un club a lo largo del tiempo", Label: "Ranking de jugador en club", LabelPlural: "Rankings de jugadores en clubes", Model: func() any { return &ranking.RankingJugadorClub{} }, Slice: func() any { return &[]ranking.RankingJugadorClub{} }},
	{Slug: "ranking_jugador_torneo", Table: "ranking_jugador_torneo", Comment: "Ranking de un jugador en un torneo determinado", Label: "Ranking de jugador en torneo", LabelPlural: "Rankings de jugadores en torneos", Model: func() any { return &ranking.RankingJugadorTorneo{} }, Slice: func() any { return &[]ranking.RankingJugadorTorneo{} }},
	{Slug: "ranking_pareja_club", Table: "ranking_pareja_club", Comment: "Ranking de una pareja en un club a lo largo del tiempo", Label: "Ranking de pareja en club", LabelPlural: "Rankings de parejas en clubes", Model: func() any { return &ranking.RankingParejaClub{} }, Slice: func() any { return &[]ranking.RankingParejaClub{} }},
	{Slug: "ranking_pareja_torneo", Table: "ranking_pareja_torneo", Comment: "Ranking de una pareja en un torneo de dobles determinado", Label: "Ranking de pareja en torneo", LabelPlural: "Rankings de parejas en torneos", Model: func() any { return &ranking.RankingParejaTorneo{} }, Slice: func() any { return &[]ranking.RankingParejaTorneo{} }},
	{Slug: "rating", Table: "rating", Comment: "Rating de un jugador a lo largo del tiempo", Label: "Rating", LabelPlural: "Ratings", Model: func() any { return &ranking.Rating{} }, Slice: func() any { return &[]ranking.Rating{} }},
	{Slug: "reserva_club", Table: "reserva_club", Comment: "Reserva de pista de un club, puede que para un equipo concreto", Label: "Reserva de club", LabelPlural: "Reservas de clubes", Model: func() any { return &booking.ReservaClub{} }, Slice: func() any { return &[]booking.ReservaClub{} }},
	{Slug: "reserva_curso", Table: "reserva_curso", Comment: "Reserva de pista por parte de un curso", Label: "Reserva de curso", LabelPlural: "Reservas de cursos", Model: func() any { return &booking.ReservaCurso{} }, Slice: func() any { return &[]booking.ReservaCurso{} }},
	{Slug: "reserva_jugador", Table: "reserva_jugador", Comment: "Reserva de pista por parte de un jugador", Label: "Reserva de jugador", LabelPlural: "Reservas de jugadores", Model: func() any { return &booking.ReservaJugador{} }, Slice: func() any { return &[]booking.ReservaJugador{} }},
	{Slug: "reserva_torneo_dobles", Table: "reserva_torneo_dobles", Comment: "Reserva de pista por parte de un torneo de dobles", Label: "Reserva de torneo de dobles", LabelPlural: "Reservas de torneos de dobles", Model: func() any { return &booking.ReservaTorneoDobles{} }, Slice: func() any { return &[]booking.ReservaTorneoDobles{} }},
	{Slug: "reserva_torneo_equipos", Table: "reserva_torneo_equipos", Comment: "Reserva de pista por parte de un torneo por equipos", Label: "Reserva de torneo por equipos", LabelPlural: "Reservas de torneos por equipos", Model: func() any { return &booking.ReservaTorneoEquipos{} }, Slice: func() any { return &[]booking.ReservaTorneoEquipos{} }},
	{Slug: "reserva_torneo_individual", Table: "reserva_torneo_individual", Comment: "Reserva de pista por parte de un torneo individual", Label: "Reserva de torneo individual", LabelPlural: "Reservas de torneos individuales", Model: func() any { return &booking.ReservaTorneoIndividual{} }, Slice: func() any { return &[]booking.ReservaTorneoIndividual{} }},
	{Slug: "tecnico", Table: "tecnico", Comment: "Los técnicos son personas que poseen una titulación", Label: "Técnico", LabelPlural: "Técnicos", ReadOnly: soloToken, Model: func() any { return &person.Tecnico{} }, Slice: func() any { return &[]person.Tecnico{} }},
	{Slug: "tipo_calendario", Table: "tipo_calendario", Comment: "Tipos de entradas de calendario", Label: "Tipo de calendario", LabelPlural: "Tipos de calendario", Model: func() any { return &lookup.TipoCalendario{} }, Slice: func() any { return &[]lookup.TipoCalendario{} }},
	{Slug: "tipo_capacitacion", Table: "tipo_capacitacion", Comment: "Tipos posibles de capacitación", Label: "Tipo de capacitación", LabelPlural: "Tipos de capacitación", Model: func() any { return &lookup.TipoCapacitacion{} }, Slice: func() any { return &[]lookup.TipoCapacitacion{} }},
	{Slug: "tipo_competicion", Table: "tipo_competicion", Comment: "Tipos posibles de competición", Label: "Tipo de competición", LabelPlural: "Tipos de competición", Model: func() any { return &lookup.TipoCompeticion{} }, Slice: func() any { return &[]lookup.TipoCompeticion{} }},
	{Slug: "tipo_contrato", Table: "tipo_contrato", Comment: "Tipos posibles de contrato", Label: "Tipo de contrato", LabelPlural: "Tipos de contrato", Model: func() any { return &lookup.TipoContrato{} }, Slice: func() any { return &[]lookup.TipoContrato{} }},
	{Slug: "tipo_curso", Table: "tipo_curso", Comment: "Tipos posibles de curso", Label: "Tipo de curso", LabelPlural: "Tipos de curso", Model: func() any { return &lookup.TipoCurso{} }, Slice: func() any { return &[]lookup.TipoCurso{} }},
	{Slug: "tipo_dependencia", Table: "tipo_dependencia", Comment: "Tipos posibles de dependencia", Label: "Tipo de dependencia", LabelPlural: "Tipos de dependencia", Model: func() any { return &lookup.TipoDependencia{} }, Slice: func() any { return &[]lookup.TipoDependencia{} }},
	{Slug: "tipo_diasemanal", Table: "tipo_diasemanal", Comment: "Días de la semana", Label: "Día de la semana", LabelPlural: "Días de la semana", Model: func() any { return &lookup.TipoDiasemanal{} }, Slice: func() any { return &[]lookup.TipoDiasemanal{} }},
	{Slug: "tipo_directivo", Table: "tipo_directivo", Comment: "Tipos posibles de directivo", Label: "Tipo de directivo", LabelPlural: "Tipos de directivo", Model: func() any { return &lookup.TipoDirectivo{} }, Slice: func() any { return &[]lookup.TipoDirectivo{} }},
	{Slug: "tipo_empleo", Table: "tipo_empleo", Comment: "Tipos posibles de empleo", Label: "Tipo de empleo", LabelPlural: "Tipos de empleo", Model: func() any { return &lookup.TipoEmpleo{} }, Slice: func() any { return &[]lookup.TipoEmpleo{} }},
	{Slug: "tipo_identificacion", Table: "tipo_identificacion", Comment: "Tipos posibles de identificación", Label: "Tipo de identificación", LabelPlural: "Tipos de identificación", Model: func() any { return &lookup.TipoIdentificacion{} }, Slice: func() any { return &[]lookup.TipoIdentificacion{} }},
	{Slug: "tipo_lateralidad", Table: "tipo_lateralidad", Comment: "Tipos posibles de lateralidad", Label: "Tipo de lateralidad", LabelPlural: "Tipos de lateralidad", Model: func() any { return &lookup.TipoLateralidad{} }, Slice: func() any { return &[]lookup.TipoLateralidad{} }},
	{Slug: "tipo_membresia", Table: "tipo_membresia", Comment: "Tipos posibles de membresía", Label: "Tipo de membresía", LabelPlural: "Tipos de membresía", Model: func() any { return &lookup.TipoMembresia{} }, Slice: func() any { return &[]lookup.TipoMembresia{} }},
	{Slug: "tipo_mensaje", Table: "tipo_mensaje", Comment: "Tipos posibles de mensaje", Label: "Tipo de mensaje", LabelPlural: "Tipos de mensaje", Model: func() any { return &lookup.TipoMensaje{} }, Slice: func() any { return &[]lookup.TipoMensaje{} }},
	{Slug: "tipo_pista", Table: "tipo_pista", Comment: "Tipos posibles de pista", Label: "Tipo de pista", LabelPlural: "Tipos de pista", Model: func() any { return &lookup.TipoPista{} }, Slice: func() any { return &[]lookup.TipoPista{} }},
	{Slug: "tipo_posesion", Table: "tipo_posesion", Comment: "Tipos posibles de posesión", Label: "Tipo de posesión", LabelPlural: "Tipos de posesión", Model: func() any { return &lookup.TipoPosesion{} }, Slice: func() any { return &[]lookup.TipoPosesion{} }},
	{Slug: "tipo_sexo", Table: "tipo_sexo", Comment: "Tipos de sexo posibles", Label: "Sexo", LabelPlural: "Sexos", Model: func() any { return &lookup.TipoSexo{} }, Slice: func() any { return &[]lookup.TipoSexo{} }},
	{Slug: "tipo_suelo", Table: "tipo_suelo", Comment: "Tipos posibles de suelo", Label: "Tipo de suelo", LabelPlural: "Tipos de suelo", Model: func() any { return &lookup.TipoSuelo{} }, Slice: func() any { return &[]lookup.TipoSuelo{} }},
	{Slug: "tipo_titulacion", Table: "tipo_titulacion", Comment: "Tipos posibles de titulación", Label: "Tipo de titulación", LabelPlural: "Tipos de titulación", Model: func() any { return &lookup.TipoTitulacion{} }, Slice: func() any { return &[]lookup.TipoTitulacion{} }},
	{Slug: "torneo_dobles", Table: "torneo_dobles", Comment: "Torneos de dobles", Label: "Torneo de dobles", LabelPlural: "Torneos de dobles", ReadOnly: soloToken, Model: func() any { return &tournament.TorneoDobles{} }, Slice: func() any { return &[]tournament.TorneoDobles{} }},
	{Slug: "torneo_equipos", Table: "torneo_equipos", Comment: "Torneos por equipos", Label: "Torneo por equipos", LabelPlural: "Torneos por equipos", ReadOnly: soloToken, Model: func() any { return &tournament.TorneoEquipos{} }, Slice: func() any { return &[]tournament.TorneoEquipos{} }},
	{Slug: "torneo_individual", Table: "torneo_individual", Comment: "Torneos individuales", Label: "Torneo individual", LabelPlural: "Torneos individuales", ReadOnly: soloToken, Model: func() any { return &tournament.TorneoIndividual{} }, Slice: func() any { return &[]tournament.TorneoIndividual{} }},

	// Plugin de encuestas, registrado como app dependiente.
	{Slug: "encuesta", Table: "djf_surveys_survey", Comment: "Encuestas definidas", Label: "Encuesta", LabelPlural: "Encuestas", Model: func() any { return &survey.Encuesta{} }, Slice: func() any { return &[]survey.Encuesta{} }},
	{Slug: "pregunta", Table: "djf_surveys_question", Comment: "Preguntas de una encuesta", Label: "Pregunta", LabelPlural: "Preguntas", Model: func() any { return &survey.Pregunta{} }, Slice: func() any { return &[]survey.Pregunta{} }},
	{Slug: "respuesta", Table: "djf_surveys_answer", Comment: "Respuestas a preguntas de encuestas", Label: "Respuesta", LabelPlural: "Respuestas", Model: func() any { return &survey.Respuesta{} }, Slice: func() any { return &[]survey.Respuesta{} }},
	{Slug: "encuesta_respondida", Table: "djf_surveys_useranswer", Comment: "Encuestas ya respondidas por usuarios", Label: "Encuesta ya respondida", LabelPlural: "Encuestas ya respondidas", Model: func() any { return &survey.EncuestaRespondida{} }, Slice: func() any { return &[]survey.EncuestaRespondida{} }},
}

// Lookup returns the registration for a slug.
func Lookup(slug string) (*Registration, bool) {
	for i := range Registry {
		if Registry[i].Slug == slug {
			return &Registry[i], true
		}
	}
	return nil, false
}

// Models returns every model to migrate: the registry entries plus the
// account and permission tables, which are infrastructure rather than
// managed entities.
func Models() []any {
	models := []any{&auth.Cuenta{}, &Permiso{}}
	for i := range Registry {
		models = append(models, Registry[i].Model())
	}
	return models
}
