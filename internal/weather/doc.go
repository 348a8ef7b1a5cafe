package weather

// Package weather fetches current conditions and a short daily forecast. The
// Provider interface is what the dashboard depends on; Client implements it on
// top of the Open-Meteo geocoding and forecast APIs.
