package holidaysvc

import (
	"context"
	"encoding/json"
	"github.com/OpenTransitTools/helligdage/business/data/holiday"
	"github.com/gorilla/mux"
	logger "log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

//defaultClientIdleTimeout is used when Conf.ClientIdleTimeout is not set
const defaultClientIdleTimeout = 5 * time.Minute

//defaultHttpHandler simple default http handler for default route
type defaultHttpHandler struct {
}

//ServeHTTP implements defaultHttpHandler http.Handler interface
func (h *defaultHttpHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Add("Application-Status", "OK")
}

//holidayHandler holds data needed to respond to and log holiday requests
type holidayHandler struct {
	log     *logger.Logger
	service *holiday.Service
}

//makeHolidayHandler holidayHandler factory
func makeHolidayHandler(log *logger.Logger, service *holiday.Service) *holidayHandler {
	return &holidayHandler{
		log:     log,
		service: service,
	}
}

//serveYear responds with all holidays in the {year} path variable
func (h *holidayHandler) serveYear(w http.ResponseWriter, r *http.Request) {
	mask, err := holiday.ParseMask(r.FormValue("types"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	year, err := strconv.Atoi(mux.Vars(r)["year"])
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid year")
		return
	}
	h.writeJSON(w, makeYearResponse(h.service, year, mask))
}

//serveDate responds with the holidays on the date in the {year}/{month}/{day} path variables
func (h *holidayHandler) serveDate(w http.ResponseWriter, r *http.Request) {
	mask, err := holiday.ParseMask(r.FormValue("types"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	vars := mux.Vars(r)
	year, yearErr := strconv.Atoi(vars["year"])
	month, monthErr := strconv.Atoi(vars["month"])
	day, dayErr := strconv.Atoi(vars["day"])
	if yearErr != nil || monthErr != nil || dayErr != nil {
		h.writeError(w, http.StatusBadRequest, "invalid date")
		return
	}
	date, err := makeDate(year, month, day)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.writeJSON(w, makeDateResponse(h.service, date, mask))
}

//serveWorkdays responds with the number of workdays between the start and end form values
func (h *holidayHandler) serveWorkdays(w http.ResponseWriter, r *http.Request) {
	mask, err := holiday.ParseMask(r.FormValue("types"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	start, err := holiday.ParseDate(r.FormValue("start"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	end, err := holiday.ParseDate(r.FormValue("end"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	response, err := makeWorkdaysResponse(h.service, start, end, mask)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.writeJSON(w, response)
}

//writeJSON marshals response as json to http.ResponseWriter
func (h *holidayHandler) writeJSON(w http.ResponseWriter, response interface{}) {
	jsonData, err := json.Marshal(response)
	if err != nil {
		h.log.Printf("Error marshaling response to json: error:%v\n", err)
		http.Error(w, "Error serving request", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	byteCount, err := w.Write(jsonData)
	if err != nil {
		h.log.Printf("Error writing json response: %s", err)
		return
	}
	h.log.Printf("wrote %d bytes in json response.", byteCount)
}

//writeError sends ErrorResponse with status
func (h *holidayHandler) writeError(w http.ResponseWriter, status int, message string) {
	jsonData, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		http.Error(w, message, status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(jsonData); err != nil {
		h.log.Printf("Error writing error response: %s", err)
	}
}

//createRouter routes holiday requests to holidayHandler
func createRouter(log *logger.Logger, service *holiday.Service, limiter *clientRateLimiter) *mux.Router {
	handler := makeHolidayHandler(log, service)

	r := mux.NewRouter()
	r.Handle("/", &defaultHttpHandler{})
	r.HandleFunc("/holidays/{year:-?[0-9]+}", handler.serveYear).Methods(http.MethodGet)
	r.HandleFunc("/holidays/{year:-?[0-9]+}/{month:[0-9]{1,2}}/{day:[0-9]{1,2}}", handler.serveDate).
		Methods(http.MethodGet)
	r.HandleFunc("/workdays", handler.serveWorkdays).Methods(http.MethodGet)
	if limiter != nil {
		r.Use(limiter.middleware)
	}
	return r
}

//createServer creates configured http.Server for responding to holiday requests
func createServer(log *logger.Logger, service *holiday.Service, conf Conf, limiter *clientRateLimiter) *http.Server {
	srv := &http.Server{
		Addr: strings.Join([]string{"0.0.0.0", strconv.Itoa(conf.HttpPort)}, ":"),
		// Good practice to set timeouts to avoid Slowloris attacks.
		WriteTimeout: time.Second * 15,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      createRouter(log, service, limiter),
	}
	return srv
}

//runWebService starts up holiday web service, and terminates on shutdown signal
func runWebService(log *logger.Logger,
	wg *sync.WaitGroup,
	service *holiday.Service,
	conf Conf,
	shutdownSignal chan bool,
) {
	defer wg.Done()
	limiter := makeClientRateLimiter(log, conf.RequestsPerSecond, conf.Burst, conf.TrustProxy)
	idleTimeout := conf.ClientIdleTimeout
	if idleTimeout <= 0 {
		idleTimeout = defaultClientIdleTimeout
	}
	sweeperShutdown := make(chan bool)
	go limiter.runSweeper(idleTimeout, idleTimeout, sweeperShutdown)
	defer close(sweeperShutdown)

	srv := createServer(log, service, conf, limiter)
	log.Printf("Starting server on port %d", conf.HttpPort)
	go func() {
		if err := srv.ListenAndServe(); err != nil {
			log.Printf("server ListenAndServe ended. %s", err)
		}
	}()

	<-shutdownSignal
	log.Printf("ending webservice on shutdown signal")
	shutdownCtx, serverCancelFunc := context.WithTimeout(context.Background(), time.Duration(5)*time.Second)
	defer serverCancelFunc()
	err := srv.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("error shutting down webservice, error:%s", err)
	}
}
