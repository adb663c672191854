package usecases

import (
	"github.com/vectasec/tara-backend/models"
	"github.com/vectasec/tara-backend/repositories"
	"github.com/vectasec/tara-backend/usecases/executor_factory"
)

type Usecases struct {
	Repositories      repositories.Repositories
	evidenceBucketUrl string
}

type Option func(*options)

type options struct {
	evidenceBucketUrl string
}

func WithEvidenceBucketUrl(url string) Option {
	return func(o *options) {
		o.evidenceBucketUrl = url
	}
}

func NewUsecases(repositories repositories.Repositories, opts ...Option) Usecases {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return Usecases{
		Repositories:      repositories,
		evidenceBucketUrl: o.evidenceBucketUrl,
	}
}

func (usecases *Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewTransactionFactory() executor_factory.TransactionFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewUsecasesWithCreds(credentials models.Credentials) *UsecasesWithCreds {
	return &UsecasesWithCreds{
		Usecases:    *usecases,
		credentials: credentials,
	}
}
