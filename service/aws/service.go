package awsadapter

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/elC0mpa/cloud-optimizer/model"
)

// NewService builds the adapter from a resolved credential. A key pair maps
// to a static provider; a profile falls back to the shared-config chain.
func NewService(ctx context.Context, cred model.AWSCredential) (*service, error) {
	var cfg awssdk.Config
	var err error

	if cred.AccessKeyID != "" {
		cfg, err = config.LoadDefaultConfig(ctx,
			config.WithRegion(cred.Region),
			config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cred.AccessKeyID, cred.SecretAccessKey, ""),
			),
		)
	} else {
		cfg, err = config.LoadDefaultConfig(ctx,
			config.WithRegion(cred.Region),
			config.WithSharedConfigProfile(cred.Profile),
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &service{
		region:    cred.Region,
		ec2Client: ec2.NewFromConfig(cfg),
		rdsClient: rds.NewFromConfig(cfg),
		s3Client:  s3.NewFromConfig(cfg),
		stsClient: sts.NewFromConfig(cfg),
	}, nil
}

func (s *service) Provider() model.Provider {
	return model.ProviderAWS
}

// ListVMs implements service.ProviderAdapter
func (s *service) ListVMs(ctx context.Context) ([]model.Resource, error) {
	var resources []model.Resource

	pager := ec2.NewDescribeInstancesPaginator(s.ec2Client, &ec2.DescribeInstancesInput{})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, classify("DescribeInstances", err)
		}

		for _, reservation := range page.Reservations {
			for _, instance := range reservation.Instances {
				resources = append(resources, s.convertInstance(instance))
			}
		}
	}

	return resources, nil
}

func (s *service) convertInstance(instance ec2types.Instance) model.Resource {
	id := awssdk.ToString(instance.InstanceId)

	name := id
	metadata := map[string]string{}
	for _, tag := range instance.Tags {
		if awssdk.ToString(tag.Key) == "Name" {
			name = awssdk.ToString(tag.Value)
		}
	}
	if instance.PrivateIpAddress != nil {
		metadata["private_ip"] = awssdk.ToString(instance.PrivateIpAddress)
	}
	if instance.PublicIpAddress != nil {
		metadata["public_ip"] = awssdk.ToString(instance.PublicIpAddress)
	}
	if instance.LaunchTime != nil {
		metadata["launch_time"] = instance.LaunchTime.Format("2006-01-02T15:04:05")
	}

	state := ""
	if instance.State != nil {
		state = string(instance.State.Name)
	}

	return model.Resource{
		ID:         id,
		Name:       name,
		Category:   model.CategoryVM,
		Provider:   model.ProviderAWS,
		Region:     s.region,
		Size:       string(instance.InstanceType),
		State:      state,
		CPUPercent: model.CPUUnknown,
		Metadata:   metadata,
	}
}

// ListDatabases implements service.ProviderAdapter
func (s *service) ListDatabases(ctx context.Context) ([]model.Resource, error) {
	var resources []model.Resource

	pager := rds.NewDescribeDBInstancesPaginator(s.rdsClient, &rds.DescribeDBInstancesInput{})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, classify("DescribeDBInstances", err)
		}

		for _, db := range page.DBInstances {
			id := awssdk.ToString(db.DBInstanceIdentifier)
			resources = append(resources, model.Resource{
				ID:         id,
				Name:       id,
				Category:   model.CategoryDatabase,
				Provider:   model.ProviderAWS,
				Region:     s.region,
				Size:       awssdk.ToString(db.DBInstanceClass),
				State:      awssdk.ToString(db.DBInstanceStatus),
				CPUPercent: model.CPUUnknown,
				Engine:     awssdk.ToString(db.Engine),
				StorageGB:  float64(awssdk.ToInt32(db.AllocatedStorage)),
				MultiAZ:    db.MultiAZ,
				Encrypted:  db.StorageEncrypted,
			})
		}
	}

	return resources, nil
}

// ListStorage implements service.ProviderAdapter
// Returns S3 buckets plus EBS volumes sitting unattached in "available"
// state, which are pure storage spend.
func (s *service) ListStorage(ctx context.Context) ([]model.Resource, error) {
	output, err := s.s3Client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, classify("ListBuckets", err)
	}

	var resources []model.Resource
	for _, bucket := range output.Buckets {
		name := awssdk.ToString(bucket.Name)
		resource := model.Resource{
			ID:         name,
			Name:       name,
			Category:   model.CategoryStorage,
			Provider:   model.ProviderAWS,
			Region:     s.region,
			Size:       "standard",
			CPUPercent: model.CPUUnknown,
			Metadata:   map[string]string{"type": "s3_bucket"},
		}
		s.annotateBucket(ctx, name, &resource)
		resources = append(resources, resource)
	}

	volumes, err := s.listAvailableVolumes(ctx)
	if err != nil {
		return nil, err
	}
	resources = append(resources, volumes...)

	return resources, nil
}

// annotateBucket fills encryption and versioning flags best-effort; a bucket
// we cannot inspect keeps nil flags so no rule fires on guesswork.
func (s *service) annotateBucket(ctx context.Context, name string, resource *model.Resource) {
	if enc, err := s.s3Client.GetBucketEncryption(ctx, &s3.GetBucketEncryptionInput{Bucket: awssdk.String(name)}); err == nil {
		encrypted := enc.ServerSideEncryptionConfiguration != nil && len(enc.ServerSideEncryptionConfiguration.Rules) > 0
		resource.Encrypted = awssdk.Bool(encrypted)
	} else if isEncryptionNotFound(err) {
		resource.Encrypted = awssdk.Bool(false)
	}

	if ver, err := s.s3Client.GetBucketVersioning(ctx, &s3.GetBucketVersioningInput{Bucket: awssdk.String(name)}); err == nil {
		resource.Versioned = awssdk.Bool(ver.Status == "Enabled")
	}
}

func (s *service) listAvailableVolumes(ctx context.Context) ([]model.Resource, error) {
	output, err := s.ec2Client.DescribeVolumes(ctx, &ec2.DescribeVolumesInput{
		Filters: []ec2types.Filter{
			{
				Name:   awssdk.String("status"),
				Values: []string{"available"},
			},
		},
	})
	if err != nil {
		return nil, classify("DescribeVolumes", err)
	}

	resources := make([]model.Resource, 0, len(output.Volumes))
	for _, volume := range output.Volumes {
		id := awssdk.ToString(volume.VolumeId)
		resources = append(resources, model.Resource{
			ID:         id,
			Name:       id,
			Category:   model.CategoryStorage,
			Provider:   model.ProviderAWS,
			Region:     s.region,
			Size:       string(volume.VolumeType),
			State:      string(volume.State),
			CPUPercent: model.CPUUnknown,
			StorageGB:  float64(awssdk.ToInt32(volume.Size)),
			Encrypted:  volume.Encrypted,
			Metadata:   map[string]string{"type": "ebs_volume"},
		})
	}

	return resources, nil
}

// TestConnection implements service.ProviderAdapter
func (s *service) TestConnection(ctx context.Context) (string, error) {
	output, err := s.stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", classify("GetCallerIdentity", err)
	}

	return fmt.Sprintf("authenticated as %s (account %s)",
		awssdk.ToString(output.Arn), awssdk.ToString(output.Account)), nil
}
