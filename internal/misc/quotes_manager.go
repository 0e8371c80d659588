package misc

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"

	log "github.com/sirupsen/logrus"
)

type QuotesManager struct {
	Quotes []*Quote
}

func NewQuoteManager(quotesCsvReader *csv.Reader) (*QuotesManager, error) {
	qm := &QuotesManager{}

	quotesCsvReader.Comma = ';'
	for {
		record, err := quotesCsvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		// QUOTE;AUTHOR;GENRE
		if len(record) != 3 {
			return nil, fmt.Errorf("record [%s] does not have 3 elements", record)
		}

		qm.Quotes = append(qm.Quotes, &Quote{
			Text:   record[0],
			Author: record[1],
			Genre:  record[2],
		})
	}

	if len(qm.Quotes) == 0 {
		return nil, fmt.Errorf("quotes CSV is empty")
	}

	log.Printf("quotes CSV read %d quotes", len(qm.Quotes))

	return qm, nil
}

func (qm *QuotesManager) RandomQuote() *Quote {
	return qm.Quotes[rand.Intn(len(qm.Quotes))]
}
