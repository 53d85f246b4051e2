// Package holidaysvc serves holiday queries over http and NATS
package holidaysvc

import (
	"github.com/OpenTransitTools/helligdage/business/data/holiday"
	"github.com/nats-io/nats.go"
	logger "log"
	"os"
	"sync"
	"time"
)

//Conf contains all configurable parameters in holidaysvc
type Conf struct {
	HttpPort          int
	RequestsPerSecond float64
	Burst             int
	TrustProxy        bool
	ClientIdleTimeout time.Duration
	QuerySubject      string
}

//StartServices brings up the web service, and the NATS query responder when natsConn is not nil.
//Returns after all services have shut down on shutdownSignal
func StartServices(log *logger.Logger,
	service *holiday.Service,
	natsConn *nats.Conn,
	conf Conf,
	shutdownSignal chan os.Signal) error {

	wg := sync.WaitGroup{}

	//create shutdown channels
	webServiceShutdown := make(chan bool, 1)
	queryResponderShutdown := make(chan bool, 1)

	if natsConn != nil {
		log.Println("Starting QueryResponder")
		err := runQueryResponder(log, &wg, natsConn, service, conf.QuerySubject, queryResponderShutdown)
		if err != nil {
			return err
		}
	}
	log.Println("Starting WebService")
	wg.Add(1)
	go runWebService(log, &wg, service, conf, webServiceShutdown)

	<-shutdownSignal
	log.Printf("Exiting on shutdown signal, shutting down subroutines")
	webServiceShutdown <- true
	queryResponderShutdown <- true
	wg.Wait()
	log.Printf("Subroutines shut down, exiting holiday service")
	return nil
}
