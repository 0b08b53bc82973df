package investmentrepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"goinvest/internal/domain"
	apperror "goinvest/internal/errors"
	"goinvest/internal/pkg/logger"
)

// CollectionName é a coleção que guarda os investimentos.
const CollectionName = "investments"

// investmentDocument é o formato persistido no MongoDB.
// __v segue a convenção de revisão do documento usada pela API original.
type investmentDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Type           string             `bson:"type"`
	Value          float64            `bson:"value"`
	InvestmentDate time.Time          `bson:"investmentDate"`
	Version        int                `bson:"__v"`
}

func (d investmentDocument) toDomain() domain.Investment {
	return domain.Investment{
		ID:             d.ID.Hex(),
		Name:           d.Name,
		Type:           domain.InvestmentType(d.Type),
		Value:          d.Value,
		InvestmentDate: d.InvestmentDate.UTC(),
		Version:        d.Version,
	}
}

// MongoRepository implementa domain.InvestmentRepository sobre uma coleção MongoDB.
type MongoRepository struct {
	Collection *mongo.Collection
	DBTimeout  time.Duration
	logger     logger.Logger
}

// NewMongoRepository cria o repositório sobre a coleção de investimentos do banco informado.
func NewMongoRepository(db *mongo.Database, dbTimeout time.Duration, logger logger.Logger) *MongoRepository {
	return &MongoRepository{
		Collection: db.Collection(CollectionName),
		DBTimeout:  dbTimeout,
		logger:     logger,
	}
}

// Create insere um novo investimento com revisão 0.
func (r *MongoRepository) Create(ctx context.Context, investment domain.Investment) (domain.Investment, error) {
	r.logger.Debug("Iniciando Create no repositório MongoDB.", map[string]interface{}{"name": investment.Name})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	doc := investmentDocument{
		ID:             primitive.NewObjectID(),
		Name:           investment.Name,
		Type:           string(investment.Type),
		Value:          investment.Value,
		InvestmentDate: investment.InvestmentDate,
		Version:        0,
	}

	if _, err := r.Collection.InsertOne(ctxTimeout, doc); err != nil {
		r.logger.Error("Falha ao inserir investimento no MongoDB.", err)
		return domain.Investment{}, apperror.NewDBError("Falha ao criar investimento.", err)
	}

	created := doc.toDomain()
	r.logger.Info("Investimento criado com sucesso.", map[string]interface{}{"id": created.ID})
	return created, nil
}

// ListAll devolve todos os investimentos na ordem natural da coleção.
func (r *MongoRepository) ListAll(ctx context.Context) ([]domain.Investment, error) {
	r.logger.Debug("Iniciando ListAll no repositório MongoDB.", nil)

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	cursor, err := r.Collection.Find(ctxTimeout, bson.D{})
	if err != nil {
		r.logger.Error("Falha ao executar Find de investimentos.", err)
		return nil, apperror.NewDBError(domain.MsgListFailed, err)
	}
	defer cursor.Close(ctxTimeout)

	var docs []investmentDocument
	if err := cursor.All(ctxTimeout, &docs); err != nil {
		r.logger.Error("Falha ao decodificar investimentos do MongoDB.", err)
		return nil, apperror.NewDBError(domain.MsgListFailed, err)
	}

	investments := make([]domain.Investment, 0, len(docs))
	for _, d := range docs {
		investments = append(investments, d.toDomain())
	}

	r.logger.Info("ListAll concluído com sucesso.", map[string]interface{}{"total_investments": len(investments)})
	return investments, nil
}

// UpdateByID substitui os quatro campos de negócio e incrementa __v.
func (r *MongoRepository) UpdateByID(ctx context.Context, id string, investment domain.Investment) (domain.Investment, error) {
	r.logger.Debug("Iniciando UpdateByID no repositório MongoDB.", map[string]interface{}{"id": id})

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Nenhum documento pode ter um _id que não seja um ObjectID válido.
		r.logger.Info("ID de investimento malformado para atualização.", map[string]interface{}{"id": id})
		return domain.Investment{}, apperror.NewNotFoundError(id, domain.MsgNotFound)
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"name":           investment.Name,
			"type":           string(investment.Type),
			"value":          investment.Value,
			"investmentDate": investment.InvestmentDate,
		},
		"$inc": bson.M{"__v": 1},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc investmentDocument
	err = r.Collection.FindOneAndUpdate(ctxTimeout, bson.M{"_id": oid}, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		r.logger.Info("Investimento não encontrado para atualização.", map[string]interface{}{"id": id})
		return domain.Investment{}, apperror.NewNotFoundError(id, domain.MsgNotFound)
	}
	if err != nil {
		r.logger.Error("Falha ao atualizar investimento no MongoDB.", err)
		return domain.Investment{}, apperror.NewDBError("Falha ao atualizar investimento.", err)
	}

	updated := doc.toDomain()
	r.logger.Info("Investimento atualizado com sucesso.", map[string]interface{}{"id": updated.ID, "version": updated.Version})
	return updated, nil
}

// DeleteByID remove o investimento pelo ID.
func (r *MongoRepository) DeleteByID(ctx context.Context, id string) error {
	r.logger.Debug("Iniciando DeleteByID no repositório MongoDB.", map[string]interface{}{"id": id})

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		r.logger.Info("ID de investimento malformado para exclusão.", map[string]interface{}{"id": id})
		return apperror.NewNotFoundError(id, domain.MsgNotFound)
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.Collection.DeleteOne(ctxTimeout, bson.M{"_id": oid})
	if err != nil {
		r.logger.Error("Falha ao remover investimento do MongoDB.", err)
		return apperror.NewDBError("Falha ao remover investimento.", err)
	}
	if result.DeletedCount == 0 {
		r.logger.Info("Investimento não encontrado para exclusão.", map[string]interface{}{"id": id})
		return apperror.NewNotFoundError(id, domain.MsgNotFound)
	}

	r.logger.Info("Investimento removido com sucesso.", map[string]interface{}{"id": id})
	return nil
}
