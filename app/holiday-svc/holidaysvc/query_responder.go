package holidaysvc

import (
	"encoding/json"
	"fmt"
	"github.com/OpenTransitTools/helligdage/business/data/holiday"
	"github.com/nats-io/nats.go"
	logger "log"
	"sync"
)

//holidayQuery is a request received over NATS. Either Date or Year must be present, Types is parsed with
//holiday.ParseMask
type holidayQuery struct {
	Date  string `json:"date,omitempty"`
	Year  *int   `json:"year,omitempty"`
	Types string `json:"types,omitempty"`
}

//runQueryResponder answers holidayQuery requests on querySubject until shutdownSignal
func runQueryResponder(
	log *logger.Logger,
	wg *sync.WaitGroup,
	natsConn *nats.Conn,
	service *holiday.Service,
	querySubject string,
	shutdownSignal chan bool) error {

	ch := make(chan *nats.Msg, 64)
	log.Printf("Subscribing to holiday queries on subject:%s on nats: %v\n", querySubject, natsConn.Servers())
	sub, err := natsConn.ChanSubscribe(querySubject, ch)
	if err != nil {
		return fmt.Errorf("unable to establish subscription to nats server: %w", err)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case msg := <-ch:
				respondToQuery(log, msg, service)
			case <-shutdownSignal:
				log.Printf("ending query responder on shutdown signal\n")
				if err := sub.Unsubscribe(); err != nil {
					log.Printf("Error unsubscribing to nats:%s", err)
				}
				return
			}
		}
	}()
	return nil
}

//respondToQuery answers a single nats.Msg, messages without a reply subject are dropped
func respondToQuery(log *logger.Logger, msg *nats.Msg, service *holiday.Service) {
	if msg.Reply == "" {
		log.Printf("dropping holiday query without reply subject, payload:%s", string(msg.Data))
		return
	}
	if err := msg.Respond(processQuery(log, msg.Data, service)); err != nil {
		log.Printf("error responding to holiday query: %s", err)
	}
}

//processQuery parses a holidayQuery and produces the json response
func processQuery(log *logger.Logger, data []byte, service *holiday.Service) []byte {
	response, err := answerQuery(data, service)
	if err != nil {
		log.Printf("error answering holiday query: %s, payload:%s", err, string(data))
		response = ErrorResponse{Error: err.Error()}
	}
	jsonData, err := json.Marshal(response)
	if err != nil {
		log.Printf("Error marshaling query response to json: error:%v\n", err)
		jsonData, _ = json.Marshal(ErrorResponse{Error: "unable to marshal response"})
	}
	return jsonData
}

//answerQuery selects the response type from the fields present in the query
func answerQuery(data []byte, service *holiday.Service) (interface{}, error) {
	var query holidayQuery
	if err := json.Unmarshal(data, &query); err != nil {
		return nil, fmt.Errorf("parsing holiday query: %w", err)
	}
	mask, err := holiday.ParseMask(query.Types)
	if err != nil {
		return nil, err
	}
	switch {
	case query.Date != "":
		date, err := holiday.ParseDate(query.Date)
		if err != nil {
			return nil, err
		}
		return makeDateResponse(service, date, mask), nil
	case query.Year != nil:
		return makeYearResponse(service, *query.Year, mask), nil
	default:
		return nil, fmt.Errorf("holiday query requires date or year")
	}
}
