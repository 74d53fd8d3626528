package bq

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/bigquery/storage/managedwriter"
	"cloud.google.com/go/bigquery/storage/managedwriter/adapt"
	"github.com/m-mizutani/goerr/v2"
	"github.com/nicepulls/nicepulls/pkg/domain/interfaces"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
	"github.com/nicepulls/nicepulls/pkg/utils/logging"
	"github.com/nicepulls/nicepulls/pkg/utils/safe"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
)

type Client struct {
	bqClient *bigquery.Client
	mwClient *managedwriter.Client
	project  string
	dataset  string
	tableID  types.BQTableID

	// a freshly merged schema takes a while to reach the write API
	schemaRetry      int
	schemaRetryDelay time.Duration
}

var _ interfaces.BigQuery = (*Client)(nil)

type Option func(*Client)

func WithSchemaRetry(count int, delay time.Duration) Option {
	return func(x *Client) {
		x.schemaRetry = count
		x.schemaRetryDelay = delay
	}
}

func New(ctx context.Context, projectID types.GoogleProjectID, datasetID types.BQDatasetID, tableID types.BQTableID, clientOptions []option.ClientOption, options ...Option) (*Client, error) {
	mwClient, err := managedwriter.NewClient(ctx, projectID.String(), clientOptions...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create bigquery client", goerr.V("projectID", projectID))
	}

	bqClient, err := bigquery.NewClient(ctx, projectID.String(), clientOptions...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create BigQuery client", goerr.V("projectID", projectID))
	}

	client := &Client{
		bqClient:         bqClient,
		mwClient:         mwClient,
		project:          projectID.String(),
		dataset:          datasetID.String(),
		tableID:          tableID,
		schemaRetry:      5,
		schemaRetryDelay: 3 * time.Second,
	}
	for _, opt := range options {
		opt(client)
	}
	return client, nil
}

func (x *Client) Close() error {
	return errors.Join(x.mwClient.Close(), x.bqClient.Close())
}

func (x *Client) table() *bigquery.Table {
	return x.bqClient.Dataset(x.dataset).Table(x.tableID.String())
}

// CreateTable implements interfaces.BigQuery.
func (x *Client) CreateTable(ctx context.Context, md *bigquery.TableMetadata) error {
	if err := x.table().Create(ctx, md); err != nil {
		return goerr.Wrap(err, "failed to create table", goerr.V("dataset", x.dataset), goerr.V("table", x.tableID))
	}
	return nil
}

// GetMetadata implements interfaces.BigQuery. If the table does not exist, it returns nil.
func (x *Client) GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error) {
	md, err := x.table().Metadata(ctx)
	if err != nil {
		var gErr *googleapi.Error
		if errors.As(err, &gErr) && gErr.Code == 404 {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get table metadata", goerr.V("dataset", x.dataset), goerr.V("table", x.tableID))
	}

	return md, nil
}

// UpdateTable implements interfaces.BigQuery.
func (x *Client) UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error {
	if _, err := x.table().Update(ctx, md, eTag); err != nil {
		return goerr.Wrap(err, "failed to update table", goerr.V("dataset", x.dataset), goerr.V("table", x.tableID), goerr.V("meta", md))
	}

	return nil
}

// Insert implements interfaces.BigQuery. The row goes through the storage
// write API, encoded with a descriptor derived from schema.
func (x *Client) Insert(ctx context.Context, schema bigquery.Schema, data any) error {
	descriptor, row, err := encodeRow(schema, data)
	if err != nil {
		return err
	}

	for attempt := 0; ; attempt++ {
		err := x.appendRows(ctx, descriptor, [][]byte{row})
		if err == nil {
			return nil
		}
		if !IsSchemaNotFoundError(err) || attempt >= x.schemaRetry {
			return err
		}

		logging.From(ctx).Warn("table schema not ready yet, retrying insert",
			slog.Int("attempt", attempt+1),
			slog.Any("table", x.tableID),
		)
		select {
		case <-ctx.Done():
			return goerr.Wrap(ctx.Err(), "insert cancelled while waiting for schema")
		case <-time.After(x.schemaRetryDelay):
		}
	}
}

func encodeRow(schema bigquery.Schema, data any) (*descriptorpb.DescriptorProto, []byte, error) {
	convertedSchema, err := adapt.BQSchemaToStorageTableSchema(schema)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to convert schema")
	}

	descriptor, err := adapt.StorageSchemaToProto2Descriptor(convertedSchema, "root")
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to convert schema to descriptor")
	}
	messageDescriptor, ok := descriptor.(protoreflect.MessageDescriptor)
	if !ok {
		return nil, nil, goerr.New("adapted descriptor is not a message descriptor")
	}
	descriptorProto, err := adapt.NormalizeDescriptor(messageDescriptor)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to normalize descriptor")
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to Marshal json message", goerr.V("v", data))
	}
	sanitizedRaw, err := sanitizeProtoJSON(raw)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to sanitize json message", goerr.V("raw", string(raw)))
	}

	message := dynamicpb.NewMessage(messageDescriptor)
	if err := protojson.Unmarshal(sanitizedRaw, message); err != nil {
		return nil, nil, goerr.Wrap(err, "failed to Unmarshal json message", goerr.V("raw", string(raw)))
	}
	b, err := proto.Marshal(message)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to Marshal proto message")
	}

	return descriptorProto, b, nil
}

func (x *Client) appendRows(ctx context.Context, descriptor *descriptorpb.DescriptorProto, rows [][]byte) error {
	ms, err := x.mwClient.NewManagedStream(ctx,
		managedwriter.WithDestinationTable(
			managedwriter.TableParentFromParts(x.project, x.dataset, x.tableID.String()),
		),
		managedwriter.WithSchemaDescriptor(descriptor),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to create managed stream")
	}
	defer safe.Close(ms)

	arResult, err := ms.AppendRows(ctx, rows)
	if err != nil {
		return goerr.Wrap(err, "failed to append rows")
	}

	if _, err := arResult.FullResponse(ctx); err != nil {
		return goerr.Wrap(err, "failed to get append result")
	}

	return nil
}

// IsSchemaNotFoundError tells whether the write API rejected a row because
// the table does not know some of its fields yet.
func IsSchemaNotFoundError(err error) bool {
	st, ok := status.FromError(err)
	if !ok {
		return false
	}
	return st.Code() == codes.InvalidArgument &&
		strings.Contains(st.Message(), "Input schema has more fields than BigQuery schema")
}

func sanitizeProtoJSON(raw []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var data any
	if err := dec.Decode(&data); err != nil {
		return nil, err
	}

	buf, err := json.Marshal(sanitizeProtoJSONValue(data))
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func sanitizeProtoJSONValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		res := make(map[string]any, len(val))
		for key, value := range val {
			res[protoFieldJSONName(key)] = sanitizeProtoJSONValue(value)
		}
		return res
	case []any:
		for i := range val {
			val[i] = sanitizeProtoJSONValue(val[i])
		}
		return val
	default:
		return v
	}
}

// protoFieldJSONName maps keys that are not valid proto field names onto a
// stable base64 based name.
func protoFieldJSONName(name string) string {
	if protoreflect.Name(name).IsValid() {
		return name
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(name))
	encoded = strings.NewReplacer("+", "_", "/", "_", "=", "").Replace(encoded)
	return "col_" + encoded
}
